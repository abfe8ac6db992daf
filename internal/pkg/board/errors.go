package board

import "github.com/pkg/errors"

// ErrPlacementFailed indicates the catalog could not be placed on the grid
// within the attempt budget. This is a deployment-time misconfiguration of
// grid size versus catalog, never a runtime condition.
var ErrPlacementFailed = errors.New("ship placement failed")

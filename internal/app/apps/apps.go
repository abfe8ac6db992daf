// Package apps wires the client and server applications together from their
// configuration.
package apps

import (
	"context"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// App is a runnable application.
type App interface {
	Run(ctx context.Context, args []string) error
}

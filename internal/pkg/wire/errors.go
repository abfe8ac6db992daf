package wire

import "github.com/pkg/errors"

// ErrPeerDisconnected indicates the peer closed the connection.
var ErrPeerDisconnected = errors.New("peer disconnected")

// ErrPeerTimeout indicates the peer sent nothing within the idle timeout.
var ErrPeerTimeout = errors.New("peer timed out")

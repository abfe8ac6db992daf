package server

import "github.com/pkg/errors"

// ErrProtocolViolation indicates a well-formed message of a type that is not
// valid in the session's current state. It is session-fatal: the client is
// notified with ERROR and the connection is closed.
var ErrProtocolViolation = errors.New("protocol violation")

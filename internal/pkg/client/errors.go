package client

import "github.com/pkg/errors"

// ErrUnexpectedReply indicates the server sent a message that is not valid
// for the client's current state. It is fatal to the session.
var ErrUnexpectedReply = errors.New("unexpected reply")

// ErrShotsExhausted indicates the automatic shot source has fired at every
// cell on the grid.
var ErrShotsExhausted = errors.New("no coordinates left to fire at")

// ErrInputClosed indicates the interactive input ended before the game did.
var ErrInputClosed = errors.New("input closed")

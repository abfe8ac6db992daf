package protocol

import "github.com/pkg/errors"

// ErrMalformedMessage indicates a frame that could not be decoded: invalid
// structure, or a type tag outside the closed set.
var ErrMalformedMessage = errors.New("malformed message")

// ErrNoLegacyEncoding indicates a message type the legacy plain-text wire
// format cannot carry.
var ErrNoLegacyEncoding = errors.New("message has no legacy encoding")

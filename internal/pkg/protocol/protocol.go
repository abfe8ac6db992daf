// Package protocol defines the battleship wire messages and the codecs that
// read and write them as newline-terminated frames.
package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Type tags a protocol message.
type Type string

// The closed set of message types.
const (
	TypeStartGame        Type = "START_GAME"
	TypePositioningShips Type = "POSITIONING_SHIPS"
	TypeShipsInPosition  Type = "SHIPS_IN_POSITION"
	TypeShot             Type = "SHOT"
	TypeHit              Type = "HIT"
	TypeMiss             Type = "MISS"
	TypeGameOver         Type = "GAME_OVER"
	TypeError            Type = "ERROR"
)

var messageTypes = map[Type]struct{}{
	TypeStartGame:        {},
	TypePositioningShips: {},
	TypeShipsInPosition:  {},
	TypeShot:             {},
	TypeHit:              {},
	TypeMiss:             {},
	TypeGameOver:         {},
	TypeError:            {},
}

// Valid reports whether t is in the closed set of message types.
func (t Type) Valid() bool {
	_, ok := messageTypes[t]
	return ok
}

// Payload is the associative data carried by a message. Most message types
// carry none; SHOT carries a coordinate, GAME_OVER a score and ERROR a text.
type Payload map[string]interface{}

// Coordinate returns the "coordinate" value, if present.
func (p Payload) Coordinate() (string, bool) {
	coord, ok := p["coordinate"].(string)
	return coord, ok
}

// Score returns the "score" value, if present. Decoded JSON numbers arrive
// as float64, locally constructed payloads as int.
func (p Payload) Score() (int, bool) {
	switch v := p["score"].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Text returns the "message" value, if present.
func (p Payload) Text() (string, bool) {
	text, ok := p["message"].(string)
	return text, ok
}

// Message is one protocol frame. Messages are immutable once constructed.
type Message struct {
	Type Type    `json:"type"`
	Data Payload `json:"data"`
}

// NewMessage creates a message of the given type. A nil payload becomes an
// empty one so the frame always carries a data object.
func NewMessage(t Type, data Payload) Message {
	if data == nil {
		data = Payload{}
	}
	return Message{Type: t, Data: data}
}

// Codec encodes and decodes messages to and from single self-delimited,
// newline-terminated frames.
type Codec interface {
	Encode(Message) ([]byte, error)
	Decode([]byte) (Message, error)
}

// JSONCodec is the canonical wire format: {"type":"<TAG>","data":{...}}\n.
type JSONCodec struct{}

// Encode serializes msg as one frame.
func (JSONCodec) Encode(msg Message) ([]byte, error) {
	if !msg.Type.Valid() {
		return nil, errors.Wrapf(ErrMalformedMessage, "unknown message type %q", msg.Type)
	}
	if msg.Data == nil {
		msg.Data = Payload{}
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal message failed")
	}
	return append(b, '\n'), nil
}

// Decode parses one frame. Well-formed frames carrying semantically wrong
// payloads (e.g. a SHOT with no coordinate) decode successfully; payload
// validation belongs to the session state machines.
func (JSONCodec) Decode(frame []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(bytes.TrimRight(frame, "\r\n"), &msg); err != nil {
		return Message{}, errors.Wrapf(ErrMalformedMessage, "parse frame failed: %v", err)
	}
	if !msg.Type.Valid() {
		return Message{}, errors.Wrapf(ErrMalformedMessage, "unknown message type %q", msg.Type)
	}
	if msg.Data == nil {
		msg.Data = Payload{}
	}
	return msg, nil
}

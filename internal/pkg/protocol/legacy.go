package protocol

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Legacy wire literals.
const (
	legacyStartGame        = "START GAME"
	legacyPositioningShips = "POSITIONING SHIPS"
	legacyShipsInPosition  = "SHIPS IN POSITION"
	legacyHit              = "HIT"
	legacyMiss             = "MISS"
)

// LegacyCodec speaks the historical plain-text wire format: literal
// newline-terminated strings, a bare coordinate for shots and a bare integer
// score for game over. It carries the same state machine as the JSON format
// but has no ERROR representation, so a session using it closes silently on
// any violation.
type LegacyCodec struct{}

// Encode serializes msg as one plain-text frame.
func (LegacyCodec) Encode(msg Message) ([]byte, error) {
	switch msg.Type {
	case TypeStartGame:
		return []byte(legacyStartGame + "\n"), nil
	case TypePositioningShips:
		return []byte(legacyPositioningShips + "\n"), nil
	case TypeShipsInPosition:
		return []byte(legacyShipsInPosition + "\n"), nil
	case TypeHit:
		return []byte(legacyHit + "\n"), nil
	case TypeMiss:
		return []byte(legacyMiss + "\n"), nil
	case TypeShot:
		coord, ok := msg.Data.Coordinate()
		if !ok {
			return nil, errors.Wrap(ErrMalformedMessage, "shot without coordinate")
		}
		return []byte(coord + "\n"), nil
	case TypeGameOver:
		score, ok := msg.Data.Score()
		if !ok {
			return nil, errors.Wrap(ErrMalformedMessage, "game over without score")
		}
		return []byte(strconv.Itoa(score) + "\n"), nil
	default:
		return nil, errors.Wrapf(ErrNoLegacyEncoding, "cannot encode %s", msg.Type)
	}
}

// Decode parses one plain-text frame.
func (LegacyCodec) Decode(frame []byte) (Message, error) {
	line := strings.TrimRight(string(frame), "\r\n")
	switch line {
	case legacyStartGame:
		return NewMessage(TypeStartGame, nil), nil
	case legacyPositioningShips:
		return NewMessage(TypePositioningShips, nil), nil
	case legacyShipsInPosition:
		return NewMessage(TypeShipsInPosition, nil), nil
	case legacyHit:
		return NewMessage(TypeHit, nil), nil
	case legacyMiss:
		return NewMessage(TypeMiss, nil), nil
	}
	if score, err := strconv.Atoi(line); err == nil {
		return NewMessage(TypeGameOver, Payload{"score": score}), nil
	}
	if ValidateCoordinate(strings.ToUpper(line)) {
		return NewMessage(TypeShot, Payload{"coordinate": strings.ToUpper(line)}), nil
	}
	return Message{}, errors.Wrapf(ErrMalformedMessage, "unrecognised frame %q", line)
}

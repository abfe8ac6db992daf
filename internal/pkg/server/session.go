package server

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/lembowen/COSC340-A3/internal/pkg/board"
	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// State is the lifecycle position of a session.
type State uint8

// Session lifecycle states.
const (
	StateAwaitingStart State = iota
	StatePositioning
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAwaitingStart:
		return "AWAITING_START"
	case StatePositioning:
		return "POSITIONING"
	case StateInProgress:
		return "IN_PROGRESS"
	case StateComplete:
		return "COMPLETE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// Session drives one game from handshake to completion. It owns the hidden
// board, performs no I/O, and is fed decoded messages by the connection
// loop, which forwards the reply frames it returns.
type Session struct {
	id    uuid.UUID
	board *board.Board
	state State
	rng   *rand.Rand
}

// SessionCfg configures a Session.
type SessionCfg func(*Session) error

// WithRand sets the randomness source used for ship placement.
func WithRand(rng *rand.Rand) SessionCfg {
	return func(s *Session) error {
		s.rng = rng
		return nil
	}
}

// NewSession creates a new Session with the given configuration. The board
// is constructed but unpositioned until the handshake arrives.
func NewSession(cfgs ...SessionCfg) (*Session, error) {
	sess := &Session{
		id:    uuid.New(),
		board: board.NewBoard(),
		state: StateAwaitingStart,
	}
	for _, cfg := range cfgs {
		if err := cfg(sess); err != nil {
			return nil, errors.Wrap(err, "apply Session cfg failed")
		}
	}
	if sess.rng == nil {
		sess.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint: gosec // game placement, not crypto
	}
	return sess, nil
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the shot tally so far.
func (s *Session) Score() int {
	return s.board.Score()
}

// Done reports whether the game has completed.
func (s *Session) Done() bool {
	return s.state == StateComplete
}

// Handle feeds one message to the session and returns the reply frames, in
// order. A returned error wrapping ErrProtocolViolation is session-fatal;
// the replies must still be sent before the connection is closed.
func (s *Session) Handle(msg protocol.Message) ([]protocol.Message, error) {
	switch s.state {
	case StateAwaitingStart:
		return s.handleStart(msg)
	case StateInProgress:
		return s.handleShot(msg)
	default:
		return s.violation("unexpected %s message in state %s", msg.Type, s.state)
	}
}

func (s *Session) handleStart(msg protocol.Message) ([]protocol.Message, error) {
	if msg.Type != protocol.TypeStartGame {
		return s.violation("expected START_GAME, got %s", msg.Type)
	}
	s.state = StatePositioning
	if err := s.board.PlaceShips(s.rng); err != nil {
		return nil, errors.Wrap(err, "place ships failed")
	}
	s.state = StateInProgress
	// Two distinct acknowledgements, so the client can tell "positioning"
	// from "positioning complete" even though placement is synchronous.
	return []protocol.Message{
		protocol.NewMessage(protocol.TypePositioningShips, nil),
		protocol.NewMessage(protocol.TypeShipsInPosition, nil),
	}, nil
}

func (s *Session) handleShot(msg protocol.Message) ([]protocol.Message, error) {
	if msg.Type != protocol.TypeShot {
		return s.violation("expected SHOT, got %s", msg.Type)
	}
	coord, ok := msg.Data.Coordinate()
	coord = strings.ToUpper(coord)
	if !ok || !protocol.ValidateCoordinate(coord) {
		// Recoverable per-turn error: the turn is retried, the session stays open.
		return []protocol.Message{errorMessage("Invalid coordinate format")}, nil
	}
	hit, over := s.board.ResolveShot(coord)
	if over {
		s.state = StateComplete
		return []protocol.Message{
			protocol.NewMessage(protocol.TypeGameOver, protocol.Payload{"score": s.board.Score()}),
		}, nil
	}
	reply := protocol.TypeMiss
	if hit {
		reply = protocol.TypeHit
	}
	return []protocol.Message{protocol.NewMessage(reply, nil)}, nil
}

func (s *Session) violation(format string, args ...interface{}) ([]protocol.Message, error) {
	detail := fmt.Sprintf(format, args...)
	return []protocol.Message{errorMessage(detail)}, errors.Wrap(ErrProtocolViolation, detail)
}

func errorMessage(text string) protocol.Message {
	return protocol.NewMessage(protocol.TypeError, protocol.Payload{"message": text})
}

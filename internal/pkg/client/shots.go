package client

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/lembowen/COSC340-A3/internal/pkg/board"
	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"

	"github.com/pkg/errors"
)

// ShotSource supplies the next coordinate to fire at. Implementations return
// only syntactically valid coordinates.
type ShotSource interface {
	Next() (string, error)
}

// AutoSource fires at every cell exactly once, in a shuffled order, for
// unattended play. The randomness source is injected so tests can pin the
// order.
type AutoSource struct {
	shots []string
	next  int
}

// NewAutoSource creates an AutoSource covering the whole grid.
func NewAutoSource(rng *rand.Rand) *AutoSource {
	shots := make([]string, 0, board.GridSize*board.GridSize)
	for col := 0; col < board.GridSize; col++ {
		for row := 1; row <= board.GridSize; row++ {
			shots = append(shots, fmt.Sprintf("%c%d", 'A'+col, row))
		}
	}
	rng.Shuffle(len(shots), func(i, j int) {
		shots[i], shots[j] = shots[j], shots[i]
	})
	return &AutoSource{shots: shots}
}

// Next returns the next unfired coordinate.
func (s *AutoSource) Next() (string, error) {
	if s.next >= len(s.shots) {
		return "", ErrShotsExhausted
	}
	coord := s.shots[s.next]
	s.next++
	return coord, nil
}

// PromptSource reads coordinates from a line-oriented interactive input,
// re-prompting on invalid input without contacting the server.
type PromptSource struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPromptSource creates a PromptSource reading from in and prompting on out.
func NewPromptSource(in io.Reader, out io.Writer) *PromptSource {
	return &PromptSource{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Next prompts until a valid coordinate is entered.
func (s *PromptSource) Next() (string, error) {
	for {
		fmt.Fprint(s.out, "Enter coordinates to shoot (e.g. A1): ")
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", errors.Wrap(err, "read input failed")
			}
			return "", ErrInputClosed
		}
		coord := strings.ToUpper(strings.TrimSpace(s.in.Text()))
		if protocol.ValidateCoordinate(coord) {
			return coord, nil
		}
		fmt.Fprintln(s.out, "Invalid coordinate, use column A-I and row 1-9.")
	}
}

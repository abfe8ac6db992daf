// Package board implements the hidden game board: ship placement, shot
// resolution, scoring and the termination test. It performs no I/O.
package board

import (
	"bytes"
	"fmt"
	"math/rand"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// GridSize is the side length of the square grid. Coordinates run A1..I9.
const GridSize = 9

// TotalShipCells is the number of cells occupied by the full catalog.
const TotalShipCells = 14

// maxPlacementAttempts bounds the rejection sampling per ship. Exhausting it
// means the grid cannot hold the catalog, which is a configuration error.
const maxPlacementAttempts = 1000

// Cell is the state of one grid cell.
type Cell uint8

// Cell states. EMPTY becomes SHIP during placement; SHIP becomes HIT and
// EMPTY becomes MISS on a shot. HIT and MISS are absorbing.
const (
	CellEmpty Cell = iota
	CellShip
	CellHit
	CellMiss
)

// Orientation of a placed ship, extending from its anchor.
type Orientation uint8

// Ship orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

// Ship is one catalog entry. Anchor and Orientation are set on placement and
// never change afterwards.
type Ship struct {
	Name        string
	Size        int
	Anchor      string
	Orientation Orientation
}

// catalog returns the fixed ship catalog, TotalShipCells cells in total.
func catalog() []Ship {
	return []Ship{
		{Name: "Canberra-class", Size: 5},
		{Name: "Hobart-class", Size: 4},
		{Name: "Leeuwin-class", Size: 3},
		{Name: "Armidale-class", Size: 2},
	}
}

// Board owns the grid, the ship catalog and the shot tally. A Board is owned
// exclusively by one session and is never shared across connections.
type Board struct {
	grid  [GridSize][GridSize]Cell
	ships []Ship
	shots int
	hits  int
}

// NewBoard creates an empty board with the standard catalog, unpositioned.
func NewBoard() *Board {
	return &Board{ships: catalog()}
}

// PlaceShips positions every catalog ship, in catalog order, at a uniformly
// random in-bounds, non-overlapping anchor and orientation. The randomness
// source is injected so tests can pin placements.
func (b *Board) PlaceShips(rng *rand.Rand) error {
	for i := range b.ships {
		if err := b.placeShip(rng, &b.ships[i]); err != nil {
			return errors.Wrapf(err, "place %s failed", b.ships[i].Name)
		}
	}
	return nil
}

func (b *Board) placeShip(rng *rand.Rand, ship *Ship) error {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		col, row := rng.Intn(GridSize), rng.Intn(GridSize)
		orientation := Horizontal
		if rng.Intn(2) == 1 {
			orientation = Vertical
		}
		if !b.fits(col, row, ship.Size, orientation) {
			continue
		}
		for i := 0; i < ship.Size; i++ {
			if orientation == Horizontal {
				b.grid[col+i][row] = CellShip
			} else {
				b.grid[col][row+i] = CellShip
			}
		}
		ship.Anchor = coordString(col, row)
		ship.Orientation = orientation
		return nil
	}
	return ErrPlacementFailed
}

func (b *Board) fits(col, row, size int, orientation Orientation) bool {
	if orientation == Horizontal {
		if col+size > GridSize {
			return false
		}
		for i := 0; i < size; i++ {
			if b.grid[col+i][row] != CellEmpty {
				return false
			}
		}
		return true
	}
	if row+size > GridSize {
		return false
	}
	for i := 0; i < size; i++ {
		if b.grid[col][row+i] != CellEmpty {
			return false
		}
	}
	return true
}

// ResolveShot resolves a shot at an already-validated coordinate and reports
// whether it hit and whether it ended the game. A shot at a cell that is
// already HIT or MISS changes nothing on the grid but still counts toward
// the score: wasted shots are penalised.
func (b *Board) ResolveShot(coord string) (hit, gameOver bool) {
	col, row := coordToIndices(coord)
	switch b.grid[col][row] {
	case CellShip:
		b.grid[col][row] = CellHit
		b.hits++
		b.shots++
		return true, b.IsGameOver()
	case CellEmpty:
		b.grid[col][row] = CellMiss
		b.shots++
		return false, false
	default:
		b.shots++
		return false, false
	}
}

// Score returns the number of shots taken so far. Lower is better for the
// shooter.
func (b *Board) Score() int {
	return b.shots
}

// IsGameOver reports whether every ship cell has been hit.
func (b *Board) IsGameOver() bool {
	return b.hits == TotalShipCells
}

// CellAt returns the state of the cell at an already-validated coordinate.
func (b *Board) CellAt(coord string) Cell {
	col, row := coordToIndices(coord)
	return b.grid[col][row]
}

// Mark records a shot outcome reported by the opposing side. It is used for
// the client's local view, which only ever learns hit/miss marks and never
// infers ship positions.
func (b *Board) Mark(coord string, hit bool) {
	col, row := coordToIndices(coord)
	if hit {
		b.grid[col][row] = CellHit
	} else {
		b.grid[col][row] = CellMiss
	}
}

// Ships returns a copy of the catalog with any committed placements.
func (b *Board) Ships() []Ship {
	ships := make([]Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

// String renders the grid for terminal display: X for a hit, O for a miss
// and a dot for anything unrevealed.
func (b *Board) String() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 2, 0, 1, ' ', 0)
	fmt.Fprint(w, "\t")
	for col := 0; col < GridSize; col++ {
		fmt.Fprintf(w, "%c\t", 'A'+col)
	}
	fmt.Fprint(w, "\n")
	for row := 0; row < GridSize; row++ {
		fmt.Fprintf(w, "%d\t", row+1)
		for col := 0; col < GridSize; col++ {
			switch b.grid[col][row] {
			case CellHit:
				fmt.Fprint(w, "X\t")
			case CellMiss:
				fmt.Fprint(w, "O\t")
			default:
				fmt.Fprint(w, ".\t")
			}
		}
		fmt.Fprint(w, "\n")
	}
	w.Flush()
	return buf.String()
}

// coordToIndices converts an already-validated coordinate like "B7" into
// zero-based column and row indices.
func coordToIndices(coord string) (col, row int) {
	return int(coord[0] - 'A'), int(coord[1] - '1')
}

func coordString(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row+1)
}

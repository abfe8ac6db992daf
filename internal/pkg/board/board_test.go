package board

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func allCoordinates() []string {
	coords := make([]string, 0, GridSize*GridSize)
	for col := 0; col < GridSize; col++ {
		for row := 1; row <= GridSize; row++ {
			coords = append(coords, fmt.Sprintf("%c%d", 'A'+col, row))
		}
	}
	return coords
}

func shipCoordinates(t *testing.T, ship Ship) []string {
	t.Helper()
	require.Len(t, ship.Anchor, 2)
	col, row := int(ship.Anchor[0]-'A'), int(ship.Anchor[1]-'1')
	coords := make([]string, 0, ship.Size)
	for i := 0; i < ship.Size; i++ {
		c, r := col, row
		if ship.Orientation == Horizontal {
			c += i
		} else {
			r += i
		}
		require.Less(t, c, GridSize, "%s extends out of bounds", ship.Name)
		require.Less(t, r, GridSize, "%s extends out of bounds", ship.Name)
		coords = append(coords, fmt.Sprintf("%c%d", 'A'+c, r+1))
	}
	return coords
}

func TestPlaceShipsCoversExactlyCatalogCells(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b := NewBoard()
		require.NoError(t, b.PlaceShips(rand.New(rand.NewSource(seed))))

		var shipCells int
		for _, coord := range allCoordinates() {
			if b.CellAt(coord) == CellShip {
				shipCells++
			}
		}
		// Exactly 14 occupied cells also proves no two ships overlap.
		require.Equal(t, TotalShipCells, shipCells, "seed %d", seed)

		for _, ship := range b.Ships() {
			for _, coord := range shipCoordinates(t, ship) {
				require.Equal(t, CellShip, b.CellAt(coord), "seed %d ship %s", seed, ship.Name)
			}
		}
	}
}

func TestPlaceShipsDeterministicForSameSeed(t *testing.T) {
	first := NewBoard()
	require.NoError(t, first.PlaceShips(rand.New(rand.NewSource(42))))
	second := NewBoard()
	require.NoError(t, second.PlaceShips(rand.New(rand.NewSource(42))))
	require.Equal(t, first.Ships(), second.Ships())
}

func TestResolveShot(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShips(rand.New(rand.NewSource(7))))

	var shipCoord, emptyCoord string
	for _, coord := range allCoordinates() {
		switch b.CellAt(coord) {
		case CellShip:
			if shipCoord == "" {
				shipCoord = coord
			}
		case CellEmpty:
			if emptyCoord == "" {
				emptyCoord = coord
			}
		}
	}
	require.NotEmpty(t, shipCoord)
	require.NotEmpty(t, emptyCoord)

	hit, over := b.ResolveShot(shipCoord)
	require.True(t, hit)
	require.False(t, over)
	require.Equal(t, CellHit, b.CellAt(shipCoord))
	require.Equal(t, 1, b.Score())

	// Repeating the shot is a wasted shot: no state change, tally still moves.
	hit, over = b.ResolveShot(shipCoord)
	require.False(t, hit)
	require.False(t, over)
	require.Equal(t, CellHit, b.CellAt(shipCoord))
	require.Equal(t, 2, b.Score())

	hit, over = b.ResolveShot(emptyCoord)
	require.False(t, hit)
	require.False(t, over)
	require.Equal(t, CellMiss, b.CellAt(emptyCoord))
	require.Equal(t, 3, b.Score())

	hit, over = b.ResolveShot(emptyCoord)
	require.False(t, hit)
	require.False(t, over)
	require.Equal(t, 4, b.Score())
}

func TestGameOverAfterEveryShipCellHit(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceShips(rand.New(rand.NewSource(3))))

	var hits, gameOverSignals int
	for _, coord := range allCoordinates() {
		require.Equal(t, hits == TotalShipCells, b.IsGameOver())
		hit, over := b.ResolveShot(coord)
		if hit {
			hits++
		}
		if over {
			gameOverSignals++
			require.Equal(t, TotalShipCells, hits)
		}
	}
	require.Equal(t, TotalShipCells, hits)
	require.Equal(t, 1, gameOverSignals)
	require.True(t, b.IsGameOver())
	require.Equal(t, GridSize*GridSize, b.Score())
}

func TestPlaceShipsFailsWhenShipCannotFit(t *testing.T) {
	b := &Board{ships: []Ship{{Name: "Oversize", Size: GridSize + 1}}}
	err := b.PlaceShips(rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrPlacementFailed)
}

func TestMarkAndString(t *testing.T) {
	b := NewBoard()
	b.Mark("A1", true)
	b.Mark("I9", false)
	require.Equal(t, CellHit, b.CellAt("A1"))
	require.Equal(t, CellMiss, b.CellAt("I9"))
	rendered := b.String()
	require.Contains(t, rendered, "X")
	require.Contains(t, rendered, "O")
}

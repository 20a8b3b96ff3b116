package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
)

func TestCanPlaceMatchesDenseGrid(t *testing.T) {
	// Independent check of the placement predicate: mirror the board in a
	// dense grid and verify CanPlace agrees for every kind, rotation and
	// anchor, including anchors hanging off every edge.
	const width, height = 6, 8

	b := game.NewBoard(width, height)
	occupied := [height][width]bool{}
	for _, cell := range [][2]int{{7, 0}, {7, 1}, {6, 0}, {5, 3}, {2, 5}} {
		b.Set(cell[0], cell[1], game.Block{})
		occupied[cell[0]][cell[1]] = true
	}

	free := func(row, col int) bool {
		return row >= 0 && row < height && col >= 0 && col < width && !occupied[row][col]
	}

	for _, k := range allKinds {
		for r := 0; r < k.Orientations(); r++ {
			for row := -4; row <= height; row++ {
				for col := -4; col <= width; col++ {
					p := game.Piece{Kind: k, Rot: game.Rotation(r), Row: row, Col: col}

					want := true
					for _, c := range p.Cells() {
						if !free(c.Row(), c.Col()) {
							want = false
							break
						}
					}

					got := game.CanPlace(b, p)
					if got != want {
						t.Fatalf("CanPlace mismatch for %s rot=%d anchor=(%d,%d): got %v want %v",
							k, r, row, col, got, want)
					}
				}
			}
		}
	}
}

func TestCanPlaceRejectsOverlap(t *testing.T) {
	b := game.NewBoard(10, 20)
	p := game.Piece{Kind: game.KindO, Row: 16, Col: 4}
	b.Lock(p)

	assert.False(t, game.CanPlace(b, p))
	assert.True(t, game.CanPlace(b, p.Moved(0, 3)))
}

func TestDroppedRestsOnFloor(t *testing.T) {
	for _, k := range allKinds {
		t.Run(k.String(), func(t *testing.T) {
			b := game.NewBoard(10, 20)
			p := game.Piece{Kind: k, Row: -1, Col: 3}

			dropped := game.Dropped(b, p)

			assert.True(t, game.CanPlace(b, dropped))
			assert.False(t, game.CanPlace(b, dropped.Moved(1, 0)),
				"dropped piece must not be able to move down further")
			assert.LessOrEqual(t, dropped.Row-p.Row, b.Height,
				"descent must be bounded by board height")
		})
	}
}

func TestDroppedStacksOnBlocks(t *testing.T) {
	b := game.NewBoard(10, 20)
	for col := 0; col < 10; col++ {
		b.Set(19, col, game.Block{})
	}

	p := game.Piece{Kind: game.KindI, Row: -1, Col: 3}
	dropped := game.Dropped(b, p)

	// The bar's cells sit on mask row 1, so resting on top of row 19
	// means its cells land in row 18.
	for _, c := range dropped.Cells() {
		assert.Equal(t, 18, c.Row())
	}
}

func TestHorizontalBarDescendsFourRows(t *testing.T) {
	b := game.NewBoard(10, 20)
	p := game.Piece{Kind: game.KindI, Row: -1, Col: 3}

	// The bar spawns with its cells in row 0.
	for _, c := range p.Cells() {
		require.Equal(t, 0, c.Row())
	}

	for i := 0; i < 4; i++ {
		next := p.Moved(1, 0)
		require.True(t, game.CanPlace(b, next), "step %d", i)
		p = next
	}
	b.Lock(p)

	assert.Equal(t, 4, b.OccupiedCount())
	for col := 3; col <= 6; col++ {
		_, occupied := b.At(4, col)
		assert.True(t, occupied, "expected cell at (4,%d)", col)
	}
	assert.Empty(t, b.FullRows(), "a single bar must not complete any row")
}

func TestCanPlaceEdges(t *testing.T) {
	b := game.NewBoard(10, 20)

	cases := []struct {
		name string
		p    game.Piece
		ok   bool
	}{
		{"inside", game.Piece{Kind: game.KindO, Row: 5, Col: 4}, true},
		{"past left wall", game.Piece{Kind: game.KindO, Row: 5, Col: -2}, false},
		{"past right wall", game.Piece{Kind: game.KindO, Row: 5, Col: 8}, false},
		{"past floor", game.Piece{Kind: game.KindO, Row: 18, Col: 4}, false},
		{"hugging left wall", game.Piece{Kind: game.KindO, Row: 5, Col: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, game.CanPlace(b, tc.p), fmt.Sprintf("%+v", tc.p))
		})
	}
}

package game

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Cell packs a board coordinate into a single integer so it can key the
// board's occupancy map. Rows live in the upper 16 bits, columns in the
// lower 16; both halves are signed so transient out-of-bounds coordinates
// round-trip during collision checks.
type Cell int32

// CellAt builds a Cell from a (row, col) pair.
func CellAt(row, col int) Cell {
	return Cell(int32(row)<<16 | int32(uint16(int16(col))))
}

// Row returns the row component of the cell.
func (c Cell) Row() int {
	return int(int32(c) >> 16)
}

// Col returns the column component of the cell.
func (c Cell) Col() int {
	return int(int16(c))
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row(), c.Col())
}

// Block is the content of an occupied board cell: which kind of piece left
// it there and which palette tint it carries.
type Block struct {
	Kind Kind
	Tint Tint
}

// Board is a fixed-size grid of cells. Row 0 is the top row; rows increase
// downward. Occupied cells are held sparsely, keyed by Cell.
type Board struct {
	Width  int
	Height int

	cells *intmap.Map[Cell, Block]
}

// NewBoard creates an empty board. Panics if either dimension is not
// positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid board dimensions %dx%d", width, height))
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  intmap.New[Cell, Block](width * height / 4),
	}
}

// InBounds reports whether the coordinate lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// IsCellFree reports whether the coordinate is in bounds and unoccupied.
func (b *Board) IsCellFree(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	_, occupied := b.cells.Get(CellAt(row, col))
	return !occupied
}

// At returns the block at the coordinate and whether the cell is occupied.
func (b *Board) At(row, col int) (Block, bool) {
	return b.cells.Get(CellAt(row, col))
}

// Set marks a single cell as occupied by the given block. Panics if the
// coordinate is out of bounds. Mostly useful for fixtures and tooling;
// gameplay goes through Lock.
func (b *Board) Set(row, col int, blk Block) {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("game: Set out of bounds at (%d,%d)", row, col))
	}
	b.cells.Put(CellAt(row, col), blk)
}

// Lock marks the piece's occupied cells as filled with its kind and tint.
// The placement must already have been validated with CanPlace; Lock does
// not re-check.
func (b *Board) Lock(p Piece) {
	blk := Block{Kind: p.Kind, Tint: p.Tint}
	for _, c := range p.Cells() {
		b.cells.Put(c, blk)
	}
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	return b.cells.Len()
}

// Each calls fn for every occupied cell.
func (b *Board) Each(fn func(c Cell, blk Block)) {
	b.cells.ForEach(func(c Cell, blk Block) bool {
		fn(c, blk)
		return true
	})
}

// RowFull reports whether every cell of the row is occupied.
func (b *Board) RowFull(row int) bool {
	for col := 0; col < b.Width; col++ {
		if _, occupied := b.cells.Get(CellAt(row, col)); !occupied {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for row := 0; row < b.Height; row++ {
		if b.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// RowUniformTint reports whether the row is full and every cell in it
// carries the same tint. Backs the single-color line bonus.
func (b *Board) RowUniformTint(row int) bool {
	first, occupied := b.cells.Get(CellAt(row, 0))
	if !occupied {
		return false
	}
	for col := 1; col < b.Width; col++ {
		blk, occupied := b.cells.Get(CellAt(row, col))
		if !occupied || blk.Tint != first.Tint {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above each removed
// row down by one, and returns the number of rows cleared. Relative order
// of the surviving rows is preserved.
func (b *Board) ClearFullRows() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	isFull := make(map[int]bool, len(full))
	for _, row := range full {
		isFull[row] = true
	}

	// Rebuild the occupancy map: drop cleared rows, shift each surviving
	// cell down by the number of cleared rows beneath it.
	shifted := intmap.New[Cell, Block](b.cells.Len())
	b.cells.ForEach(func(c Cell, blk Block) bool {
		row := c.Row()
		if isFull[row] {
			return true
		}
		shift := 0
		for _, cleared := range full {
			if cleared > row {
				shift++
			}
		}
		shifted.Put(CellAt(row+shift, c.Col()), blk)
		return true
	})
	b.cells = shifted

	return len(full)
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells.Clear()
}

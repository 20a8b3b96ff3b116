package game

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	kindCount = 7
)

var kindNames = [kindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) >= kindCount {
		return "?"
	}
	return kindNames[k]
}

// Orientations returns the length of the kind's rotation cycle:
// 1 for O, 2 for I/S/Z and 4 for T/J/L.
func (k Kind) Orientations() int {
	return kindOrientations[k]
}

var kindOrientations = [kindCount]int{
	KindI: 2,
	KindO: 1,
	KindT: 4,
	KindS: 2,
	KindZ: 2,
	KindJ: 4,
	KindL: 4,
}

// Rotation is an index into a kind's orientation cycle.
type Rotation uint8

// Turn selects a rotation direction.
type Turn int

const (
	TurnCW Turn = iota
	TurnCCW
)

// Next advances the rotation index in the given direction, wrapping at the
// kind's orientation count.
func (r Rotation) Next(k Kind, t Turn) Rotation {
	n := Rotation(k.Orientations())
	if t == TurnCW {
		return (r + 1) % n
	}
	return (r + n - 1) % n
}

// Tint is an index into the session palette. Locked cells remember their
// tint so that single-color rows can be detected for the score bonus.
type Tint uint8

// PaletteSize is the number of tints pieces are drawn from.
const PaletteSize = 5

type shapeMask [4][4]bool

// Base orientations. Row 0 is intentionally empty in every mask so a piece
// spawned with its anchor one row above the board surfaces at row 0.
var baseMasks = [kindCount]shapeMask{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	KindT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	KindZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	KindJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
}

// kindMasks[k][r] is the mask of kind k rotated r times clockwise.
var kindMasks [kindCount][4]shapeMask

func init() {
	for k := range kindMasks {
		m := baseMasks[k]
		for r := 0; r < 4; r++ {
			kindMasks[k][r] = m
			m = rotateMask(m)
		}
	}
}

func rotateMask(m shapeMask) shapeMask {
	var out shapeMask
	for i := range m {
		for j := range m[i] {
			out[j][len(m)-1-i] = m[i][j]
		}
	}
	return out
}

// Piece is a falling tetromino: a shape kind, a rotation state and an anchor
// position in board coordinates. The anchor is the top-left corner of the
// 4x4 mask; it may lie outside the board as long as all occupied cells are
// inside.
type Piece struct {
	Kind Kind
	Rot  Rotation
	Row  int
	Col  int
	Tint Tint
}

// Cells returns the absolute board cells the piece occupies. Pure; the
// result depends only on kind, rotation and anchor.
func (p Piece) Cells() []Cell {
	mask := kindMasks[p.Kind][p.Rot]
	cells := make([]Cell, 0, 4)
	for i := range mask {
		for j := range mask[i] {
			if mask[i][j] {
				cells = append(cells, CellAt(p.Row+i, p.Col+j))
			}
		}
	}
	return cells
}

// Moved returns a copy of the piece translated by the given row and column
// deltas. The receiver is unchanged.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Rotated returns a copy of the piece turned one step in the given
// direction. The receiver is unchanged.
func (p Piece) Rotated(t Turn) Piece {
	p.Rot = p.Rot.Next(p.Kind, t)
	return p
}

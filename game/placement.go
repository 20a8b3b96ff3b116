package game

// CanPlace reports whether every cell of the piece lies in bounds and on a
// free board cell. This single predicate backs all move types: horizontal
// movement, rotation, soft drop and hard drop. Callers attempt the
// transformed piece and commit it only when CanPlace accepts it, so moves
// are all-or-nothing.
func CanPlace(b *Board, p Piece) bool {
	for _, c := range p.Cells() {
		if !b.IsCellFree(c.Row(), c.Col()) {
			return false
		}
	}
	return true
}

// Dropped returns the piece moved down as far as it can go: the position a
// hard drop locks at. Terminates within board-height steps because every
// accepted step moves the piece one row closer to the floor.
func Dropped(b *Board, p Piece) Piece {
	for {
		next := p.Moved(1, 0)
		if !CanPlace(b, next) {
			return p
		}
		p = next
	}
}

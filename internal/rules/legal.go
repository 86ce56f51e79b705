package rules

import "github.com/arcanaland/bark/internal/board"

// IsLegal reports whether a card may be placed at pos.
// The first card may go anywhere; every later card must touch an occupied
// cell through one of the four toroidal neighbors.
func IsLegal(b *board.Board, pos board.Pos) bool {
	if !b.Contains(pos) {
		return false
	}
	if _, occupied := b.At(pos); occupied {
		return false
	}
	if b.IsEmpty() {
		return true
	}
	for _, n := range b.Neighbors(pos) {
		if _, occupied := b.At(n); occupied {
			return true
		}
	}
	return false
}

// LegalCells returns every legal placement in row-major order
func LegalCells(b *board.Board) []board.Pos {
	var out []board.Pos
	for _, pos := range b.Positions() {
		if IsLegal(b, pos) {
			out = append(out, pos)
		}
	}
	return out
}

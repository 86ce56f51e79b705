package board

import (
	"errors"
	"fmt"

	"github.com/arcanaland/bark/internal/card"
)

// Board dimension limits, inclusive
const (
	MinSize = 2
	MaxSize = 101
)

var (
	// ErrOutOfRange is returned for positions or dimensions outside the board limits
	ErrOutOfRange = errors.New("out of range")
	// ErrOccupied is returned when placing onto a cell that already holds a card
	ErrOccupied = errors.New("cell occupied")
)

// Pos is a 1-indexed board coordinate
type Pos struct {
	Col int
	Row int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

type cell struct {
	card     card.Card
	occupied bool
}

// Board is a fixed-size toroidal grid of cells
type Board struct {
	width    int
	height   int
	cells    []cell
	occupied int
}

// New creates an empty board
func New(width, height int) (*Board, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("%w: board %dx%d must be between %d and %d on each side",
			ErrOutOfRange, width, height, MinSize, MaxSize)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}, nil
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Contains reports whether pos lies on the board
func (b *Board) Contains(pos Pos) bool {
	return pos.Col >= 1 && pos.Col <= b.width && pos.Row >= 1 && pos.Row <= b.height
}

func (b *Board) index(pos Pos) int {
	return (pos.Row-1)*b.width + (pos.Col - 1)
}

// At returns the card at pos and whether the cell is occupied.
// Positions off the board read as empty.
func (b *Board) At(pos Pos) (card.Card, bool) {
	if !b.Contains(pos) {
		return card.Card{}, false
	}
	c := b.cells[b.index(pos)]
	return c.card, c.occupied
}

// Place puts a card on an empty cell. Occupancy never reverts.
func (b *Board) Place(pos Pos, c card.Card) error {
	if !b.Contains(pos) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfRange, pos, b.width, b.height)
	}
	idx := b.index(pos)
	if b.cells[idx].occupied {
		return fmt.Errorf("%w: %s", ErrOccupied, pos)
	}
	b.cells[idx] = cell{card: c, occupied: true}
	b.occupied++
	return nil
}

// Neighbor returns the toroidal neighbor of pos in direction dir
func (b *Board) Neighbor(pos Pos, dir Direction) Pos {
	return Neighbor(pos, dir, b.width, b.height)
}

// Neighbors returns the four toroidal neighbors of pos, indexed like Directions
func (b *Board) Neighbors(pos Pos) [4]Pos {
	var out [4]Pos
	for i, dir := range Directions {
		out[i] = b.Neighbor(pos, dir)
	}
	return out
}

// Occupied returns the number of cells holding a card
func (b *Board) Occupied() int { return b.occupied }

// IsEmpty reports whether no card has been placed yet
func (b *Board) IsEmpty() bool { return b.occupied == 0 }

// IsFull reports whether every cell holds a card
func (b *Board) IsFull() bool { return b.occupied == len(b.cells) }

// Positions returns every position in row-major order
func (b *Board) Positions() []Pos {
	out := make([]Pos, 0, len(b.cells))
	for row := 1; row <= b.height; row++ {
		for col := 1; col <= b.width; col++ {
			out = append(out, Pos{Col: col, Row: row})
		}
	}
	return out
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:    b.width,
		height:   b.height,
		cells:    cells,
		occupied: b.occupied,
	}
}

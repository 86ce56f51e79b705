package board

import (
	"testing"

	"github.com/arcanaland/bark/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{1, 5}, {5, 1}, {102, 5}, {5, 102}, {0, 0}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "dims %v", dims)
	}

	b, err := New(MaxSize, MinSize)
	require.NoError(t, err)
	assert.Equal(t, MaxSize, b.Width())
	assert.Equal(t, MinSize, b.Height())
}

func TestNeighborWraps(t *testing.T) {
	tests := []struct {
		name string
		pos  Pos
		dir  Direction
		want Pos
	}{
		{"interior up", Pos{2, 2}, Up, Pos{2, 1}},
		{"interior down", Pos{2, 2}, Down, Pos{2, 3}},
		{"interior left", Pos{2, 2}, Left, Pos{1, 2}},
		{"interior right", Pos{2, 2}, Right, Pos{3, 2}},
		{"top edge up", Pos{2, 1}, Up, Pos{2, 3}},
		{"bottom edge down", Pos{2, 3}, Down, Pos{2, 1}},
		{"left edge left", Pos{1, 2}, Left, Pos{4, 2}},
		{"right edge right", Pos{4, 2}, Right, Pos{1, 2}},
		{"top-left corner up", Pos{1, 1}, Up, Pos{1, 3}},
		{"top-left corner left", Pos{1, 1}, Left, Pos{4, 1}},
		{"bottom-right corner down", Pos{4, 3}, Down, Pos{4, 1}},
		{"bottom-right corner right", Pos{4, 3}, Right, Pos{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Neighbor(tt.pos, tt.dir, 4, 3))
		})
	}
}

func TestNeighborInverse(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 7}, {3, 3}, {5, 4}, {11, 2}} {
		b, err := New(dims[0], dims[1])
		require.NoError(t, err)
		for _, pos := range b.Positions() {
			for _, dir := range Directions {
				next := b.Neighbor(pos, dir)
				require.True(t, b.Contains(next), "neighbor %s of %s off board", dir, pos)
				assert.Equal(t, pos, b.Neighbor(next, dir.Opposite()),
					"board %v pos %s dir %s", dims, pos, dir)
			}
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, dir := range Directions {
		assert.NotEqual(t, dir, dir.Opposite())
		assert.Equal(t, dir, dir.Opposite().Opposite())
	}
}

func TestPlace(t *testing.T) {
	b, err := New(3, 2)
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())

	c := card.MustNew('A', 4)
	require.NoError(t, b.Place(Pos{3, 2}, c))

	got, ok := b.At(Pos{3, 2})
	assert.True(t, ok)
	assert.Equal(t, c, got)
	assert.Equal(t, 1, b.Occupied())
	assert.False(t, b.IsEmpty())

	assert.ErrorIs(t, b.Place(Pos{3, 2}, card.MustNew('B', 1)), ErrOccupied)
	assert.ErrorIs(t, b.Place(Pos{4, 1}, c), ErrOutOfRange)
	assert.ErrorIs(t, b.Place(Pos{0, 1}, c), ErrOutOfRange)

	// The rejected placement must not overwrite
	got, _ = b.At(Pos{3, 2})
	assert.Equal(t, c, got)

	_, ok = b.At(Pos{9, 9})
	assert.False(t, ok)
}

func TestIsFullAndClone(t *testing.T) {
	b, err := New(2, 2)
	require.NoError(t, err)
	for i, pos := range b.Positions() {
		require.NoError(t, b.Place(pos, card.MustNew('C', i+1)))
	}
	assert.True(t, b.IsFull())

	clone := b.Clone()
	assert.Equal(t, b.Occupied(), clone.Occupied())
	for _, pos := range b.Positions() {
		want, _ := b.At(pos)
		got, ok := clone.At(pos)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestPositionsRowMajor(t *testing.T) {
	b, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, []Pos{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}}, b.Positions())
}

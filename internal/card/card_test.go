package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		suit    byte
		number  int
		wantErr bool
	}{
		{"lowest", 'A', 1, false},
		{"highest", 'z', 9, false},
		{"zero", 'A', 0, true},
		{"ten", 'A', 10, true},
		{"digit suit", '3', 4, true},
		{"symbol suit", '*', 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.suit, tt.number)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.suit, c.Suit)
			assert.Equal(t, tt.number, c.Number)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("7C")
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: 'C', Number: 7}, c)
	assert.Equal(t, "7C", c.String())

	for _, bad := range []string{"", "7", "7CC", "C7", "0C", "**"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", bad)
	}
}

func TestPlayerParity(t *testing.T) {
	// 'A' = 65 (odd), 'B' = 66 (even)
	assert.Equal(t, 1, MustNew('A', 3).Player())
	assert.Equal(t, 2, MustNew('B', 3).Player())
	assert.Equal(t, 1, MustNew('a', 3).Player()) // 97
	assert.Equal(t, 2, MustNew('z', 3).Player()) // 122
}

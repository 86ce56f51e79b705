package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/hand"
	"github.com/arcanaland/bark/internal/save"
	"github.com/arcanaland/bark/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleBoard is the 2x2 board (1A)(9A) / (5B)(2A)
func sampleBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Place(board.Pos{Col: 1, Row: 1}, card.MustNew('A', 1)))
	require.NoError(t, b.Place(board.Pos{Col: 2, Row: 1}, card.MustNew('A', 9)))
	require.NoError(t, b.Place(board.Pos{Col: 1, Row: 2}, card.MustNew('B', 5)))
	return b
}

func TestConsoleTranscript(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)
	cards := []card.Card{card.MustNew('A', 1), card.MustNew('b', 7)}

	c.Hand(1, cards, false)
	c.Hand(2, cards, true)
	c.Played(1, cards[0], board.Pos{Col: 3, Row: 2}, false)
	c.Played(2, cards[1], board.Pos{Col: 3, Row: 2}, true)
	c.Board(sampleBoard(t))

	want := "Hand(1): 1A 7b\n" +
		"Hand: 1A 7b\n" +
		"Player 2 plays 7b in column 3 row 2\n" +
		"1A9A\n" +
		"5B..\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleFinal(t *testing.T) {
	var buf bytes.Buffer
	b := sampleBoard(t)
	NewConsole(&buf, false).Final(scoring.Score(b))
	assert.Equal(t, "Player 1=2 Player 2=1\n", buf.String())
}

func TestConsoleColorKeepsLayout(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Board(sampleBoard(t))
	assert.Contains(t, buf.String(), "\x1b[38;2;")
	assert.Equal(t, "1A9A\n5B..\n", stripAnsi(buf.String()))
}

func TestScoreLines(t *testing.T) {
	b := sampleBoard(t)
	assert.Equal(t, []string{"2 1", "1 ."}, ScoreLines(scoring.Score(b), b))
}

func TestSuitColor(t *testing.T) {
	assert.Equal(t, SuitColor('C'), SuitColor('C'))
	assert.NotEqual(t, SuitColor('A'), SuitColor('B'))
	assert.NotEqual(t, SuitColor('A'), SuitColor('a'))
	for _, s := range []byte("AZaz") {
		assert.True(t, SuitColor(s).IsValid(), "suit %c", s)
	}
}

func TestSideBySide(t *testing.T) {
	out := SideBySide([]string{"1A9A", "5B.."}, []string{"Deck: d", "Drawn: 3", "Turn: 1"}, 80)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  1A9A    Deck: d", lines[0])
	assert.Equal(t, "  5B..    Drawn: 3", lines[1])
	assert.Equal(t, "          Turn: 1", lines[2])
}

func TestSideBySideWrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 12)
	out := SideBySide([]string{".."}, []string{long}, 30)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"a bb", "ccc"}, wrapText("a bb ccc", 5))
	assert.Equal(t, []string{""}, wrapText("   ", 5))
}

func TestSummary(t *testing.T) {
	h1, err := hand.Parse("1A2B")
	require.NoError(t, err)
	b := sampleBoard(t)
	s := &save.State{Drawn: 14, Turn: 2, DeckName: "basic.deck", Hands: [2]*hand.Hand{h1, nil}, Board: b}

	lines := Summary(s, scoring.Score(b), false)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "basic.deck")
	assert.Contains(t, joined, "2x2, 3 of 4 cells")
	assert.Contains(t, joined, "player 2")
	assert.Contains(t, joined, "1A 2B")
	assert.Contains(t, joined, "Player 1=2 Player 2=1")
}

func TestHeatmap(t *testing.T) {
	b := sampleBoard(t)
	res := scoring.Score(b)

	img := Heatmap(b, res, 4)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	hot := colorfulToColor(HeatColor(2, 2))
	cold := colorfulToColor(HeatColor(1, 2))
	empty := colorfulToColor(emptyColor)
	assertSame := func(x, y int, want interface{ RGBA() (r, g, b, a uint32) }) {
		wr, wg, wb, _ := want.RGBA()
		gr, gg, gb, _ := img.At(x, y).RGBA()
		assert.Equal(t, []uint32{wr >> 8, wg >> 8, wb >> 8}, []uint32{gr >> 8, gg >> 8, gb >> 8}, "pixel (%d,%d)", x, y)
	}
	assertSame(1, 1, hot)
	assertSame(5, 1, cold)
	assertSame(6, 6, empty)
}

func TestHeatColorFlatBoard(t *testing.T) {
	assert.Equal(t, coldColor, HeatColor(1, 1))
}

func TestWriteHeatmap(t *testing.T) {
	b := sampleBoard(t)
	path := filepath.Join(t.TempDir(), "heat.png")
	require.NoError(t, WriteHeatmap(path, b, scoring.Score(b), 3))

	var buf bytes.Buffer
	require.NoError(t, EncodeHeatmap(&buf, b, scoring.Score(b), 3))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
}

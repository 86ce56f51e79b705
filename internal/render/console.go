// Package render draws games for people: the console transcript of a game in
// progress, a summary panel for saved games and a PNG heatmap of cell scores.
package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/scoring"
)

const emptyCell = ".."

// Console writes the game transcript as plain lines. It implements
// game.Reporter.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole returns a console reporter. With useColor set, cards are tinted
// by suit and the final score line is highlighted.
func NewConsole(out io.Writer, useColor bool) *Console {
	return &Console{out: out, color: useColor}
}

func (c *Console) Hand(player int, cards []card.Card, automated bool) {
	var sb strings.Builder
	if automated {
		sb.WriteString(c.label("Hand:"))
	} else {
		sb.WriteString(c.label(fmt.Sprintf("Hand(%d):", player)))
	}
	for _, cd := range cards {
		sb.WriteByte(' ')
		sb.WriteString(cardString(cd, c.color))
	}
	fmt.Fprintln(c.out, sb.String())
}

// Played announces automated moves; people see their own move on the board.
func (c *Console) Played(player int, cd card.Card, pos board.Pos, automated bool) {
	if !automated {
		return
	}
	fmt.Fprintf(c.out, "Player %d plays %s in column %d row %d\n",
		player, cardString(cd, c.color), pos.Col, pos.Row)
}

func (c *Console) Board(b *board.Board) {
	for _, line := range BoardLines(b, c.color) {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) Final(r scoring.Result) {
	p1, p2 := r.PlayerMax()
	line := fmt.Sprintf("Player 1=%d Player 2=%d", p1, p2)
	if c.color {
		line = colorize.New(colorize.FgHiWhite, colorize.Bold).Sprint(line)
	}
	fmt.Fprintln(c.out, line)
}

func (c *Console) label(s string) string {
	if !c.color {
		return s
	}
	return colorize.CyanString(s)
}

// BoardLines renders one string per board row, ".." for empty cells
func BoardLines(b *board.Board, useColor bool) []string {
	lines := make([]string, 0, b.Height())
	var sb strings.Builder
	for row := 1; row <= b.Height(); row++ {
		sb.Reset()
		for col := 1; col <= b.Width(); col++ {
			if cd, ok := b.At(board.Pos{Col: col, Row: row}); ok {
				sb.WriteString(cardString(cd, useColor))
			} else {
				sb.WriteString(emptyCell)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// ScoreLines renders the per-cell score grid, right aligned, "." for empty cells
func ScoreLines(r scoring.Result, b *board.Board) []string {
	width := len(fmt.Sprint(max(r.Max(), 1)))
	lines := make([]string, 0, b.Height())
	for row := 1; row <= b.Height(); row++ {
		cells := make([]string, 0, b.Width())
		for col := 1; col <= b.Width(); col++ {
			if s, ok := r.At(board.Pos{Col: col, Row: row}); ok {
				cells = append(cells, fmt.Sprintf("%*d", width, s))
			} else {
				cells = append(cells, fmt.Sprintf("%*s", width, "."))
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

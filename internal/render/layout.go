package render

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/save"
	"github.com/arcanaland/bark/internal/scoring"
)

const (
	panelSpacing = 4
	minInfoWidth = 20
	defaultWidth = 80
	panelIndent  = "  "
)

// Summary describes a saved game, one label per line
func Summary(s *save.State, r scoring.Result, useColor bool) []string {
	label := func(l string) string {
		if useColor {
			return colorize.CyanString(l)
		}
		return l
	}
	value := func(format string, a ...interface{}) string {
		if useColor {
			return colorize.HiWhiteString(format, a...)
		}
		return fmt.Sprintf(format, a...)
	}

	p1, p2 := r.PlayerMax()
	lines := []string{
		label("Deck:     ") + value("%s", s.DeckName),
		label("Board:    ") + value("%dx%d, %d of %d cells", s.Board.Width(), s.Board.Height(),
			s.Board.Occupied(), s.Board.Width()*s.Board.Height()),
		label("Drawn:    ") + value("%d", s.Drawn),
		label("To move:  ") + value("player %d", s.Turn),
	}
	for i, h := range s.Hands {
		var cards []card.Card
		if h != nil {
			cards = h.Cards()
		}
		tokens := make([]string, len(cards))
		for j, c := range cards {
			tokens[j] = cardString(c, useColor)
		}
		lines = append(lines, label(fmt.Sprintf("Hand(%d):  ", i+1))+strings.Join(tokens, " "))
	}
	lines = append(lines, "",
		label("Score:    ")+value("Player 1=%d Player 2=%d", p1, p2))
	return lines
}

// SideBySide prints left beside right, the right column starting after the
// widest left line. Long right lines are wrapped to fit termWidth.
func SideBySide(left, right []string, termWidth int) string {
	if termWidth <= 0 {
		termWidth = defaultWidth
	}
	leftWidth := 0
	for _, line := range left {
		leftWidth = max(leftWidth, visibleWidth(line))
	}
	infoStart := leftWidth + panelSpacing
	infoWidth := max(termWidth-infoStart-len(panelIndent), minInfoWidth)

	var wrapped []string
	for _, line := range right {
		if visibleWidth(line) <= infoWidth || line != stripAnsi(line) {
			wrapped = append(wrapped, line)
			continue
		}
		wrapped = append(wrapped, wrapText(line, infoWidth)...)
	}

	var sb strings.Builder
	rows := max(len(left), len(wrapped))
	for i := 0; i < rows; i++ {
		line := panelIndent
		if i < len(left) {
			line += left[i] + strings.Repeat(" ", infoStart-visibleWidth(left[i]))
		} else {
			line += strings.Repeat(" ", infoStart)
		}
		if i < len(wrapped) {
			line += wrapped[i]
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// wrapText wraps plain text to width columns on word boundaries
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/bark/internal/card"
)

// Player 1 suits are spread over the warm half of the hue wheel, player 2
// suits over the cool half.
const (
	warmHue  = 10.0
	coolHue  = 190.0
	hueSpan  = 150.0
	suitSpan = 26 // suits per case of the alphabet
)

// SuitColor returns the stable display color of a suit
func SuitColor(suit byte) colorful.Color {
	idx := int(suit)
	switch {
	case suit >= 'a' && suit <= 'z':
		idx = int(suit - 'a')
	case suit >= 'A' && suit <= 'Z':
		idx = int(suit - 'A')
	}
	base := coolHue
	if suit%2 == 1 {
		base = warmHue
	}
	hue := base + hueSpan*float64(idx%suitSpan)/float64(suitSpan)

	lightness := 0.72
	if suit >= 'a' && suit <= 'z' {
		lightness = 0.58
	}
	return colorful.Hcl(hue, 0.55, lightness).Clamped()
}

// colorfulToColor converts a colorful.Color to a standard color.Color
func colorfulToColor(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString wraps text in a truecolor foreground escape
func ansiColorString(text string, fg color.Color) string {
	r, g, b, _ := fg.RGBA()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r>>8, g>>8, b>>8, text)
}

// cardString renders a card token, tinted by suit when color is on
func cardString(c card.Card, useColor bool) string {
	if !useColor {
		return c.String()
	}
	return ansiColorString(c.String(), colorfulToColor(SuitColor(c.Suit)))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var b []rune
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			b = append(b, r)
		}
	}
	return string(b)
}

// visibleWidth returns the printed width of s, ignoring escape sequences
func visibleWidth(s string) int {
	return len([]rune(stripAnsi(s)))
}

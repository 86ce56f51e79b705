package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arcanaland/bark/internal/card"
)

// MinCards is the smallest deck a game can be played with
const MinCards = 11

// preallocCards bounds the slice reserved up front from a declared count
const preallocCards = 1024

var (
	// ErrParse is returned when a deck file cannot be read or is malformed
	ErrParse = errors.New("unable to parse deckfile")
	// ErrShortDeck is returned when a deck declares fewer than MinCards cards
	ErrShortDeck = errors.New("short deck")
)

// Deck represents an ordered pile of cards loaded from a deck file
type Deck struct {
	name  string
	cards []card.Card
	drawn int
}

// New creates a deck from an ordered list of cards
func New(name string, cards []card.Card) *Deck {
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return &Deck{name: name, cards: out}
}

// LoadDeck loads a deck file from disk. The deck keeps path as its name so a
// save file can point back at it.
func LoadDeck(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	cards, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return New(path, cards), nil
}

// Parse reads a deck file: a card count line followed by one <number><suit>
// line per card. Lines after the declared count are ignored.
func Parse(r io.Reader) ([]card.Card, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing card count", ErrParse)
	}
	count, err := ParseCount(scanner.Text())
	if err != nil {
		return nil, err
	}

	cards := make([]card.Card, 0, min(count, preallocCards))
	for len(cards) < count && scanner.Scan() {
		c, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(cards)+2, err)
		}
		cards = append(cards, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(cards) != count {
		return nil, fmt.Errorf("%w: expected %d cards, found %d", ErrParse, count, len(cards))
	}
	return cards, nil
}

// ParseCount parses the first line of a deck file
func ParseCount(line string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid card count %q", ErrParse, line)
	}
	if count < MinCards {
		return 0, fmt.Errorf("%w: %d cards, need at least %d", ErrShortDeck, count, MinCards)
	}
	return count, nil
}

// ParseLine parses a single card line of a deck file
func ParseLine(line string) (card.Card, error) {
	c, err := card.Parse(line)
	if err != nil {
		return card.Card{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return c, nil
}

// Name returns the deck file name
func (d *Deck) Name() string { return d.name }

// Len returns the total number of cards in the deck
func (d *Deck) Len() int { return len(d.cards) }

// Drawn returns how many cards have been dealt out
func (d *Deck) Drawn() int { return d.drawn }

// Remaining returns how many cards are left to draw
func (d *Deck) Remaining() int { return len(d.cards) - d.drawn }

// Exhausted reports whether every card has been drawn
func (d *Deck) Exhausted() bool { return d.drawn >= len(d.cards) }

// Draw takes the next card off the deck
func (d *Deck) Draw() (card.Card, bool) {
	if d.Exhausted() {
		return card.Card{}, false
	}
	c := d.cards[d.drawn]
	d.drawn++
	return c, true
}

// SetDrawn marks the first n cards as already dealt, used when resuming a save
func (d *Deck) SetDrawn(n int) error {
	if n < 0 || n > len(d.cards) {
		return fmt.Errorf("drawn count %d outside deck of %d cards", n, len(d.cards))
	}
	d.drawn = n
	return nil
}

// Cards returns a copy of every card in deck order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Write encodes cards in deck file format
func Write(w io.Writer, cards []card.Card) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(cards))
	for _, c := range cards {
		fmt.Fprintf(bw, "%s\n", c)
	}
	return bw.Flush()
}

// WriteFile saves cards as a deck file at path
func WriteFile(path string, cards []card.Card) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %v", err)
	}
	if err := Write(f, cards); err != nil {
		f.Close()
		return fmt.Errorf("error writing deck file: %v", err)
	}
	return f.Close()
}

// Standard returns every number 1-9 of each suit, suit by suit
func Standard(suits string) []card.Card {
	cards := make([]card.Card, 0, len(suits)*card.MaxNumber)
	for i := 0; i < len(suits); i++ {
		for n := card.MinNumber; n <= card.MaxNumber; n++ {
			c, err := card.New(suits[i], n)
			if err != nil {
				continue
			}
			cards = append(cards, c)
		}
	}
	return cards
}

package hand

import (
	"fmt"
	"strings"

	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/deck"
)

const (
	// Capacity is the most cards a hand can hold
	Capacity = 6
	// InitialSize is the number of cards dealt to each player at the start
	InitialSize = 5
)

// Hand is the ordered set of cards a player can place
type Hand struct {
	cards []card.Card
}

// New creates a hand holding the given cards
func New(cards ...card.Card) (*Hand, error) {
	if len(cards) > Capacity {
		return nil, fmt.Errorf("hand of %d cards exceeds capacity %d", len(cards), Capacity)
	}
	h := &Hand{cards: make([]card.Card, 0, Capacity)}
	h.cards = append(h.cards, cards...)
	return h, nil
}

// Parse reads a hand from concatenated tokens such as "1A5B9C"
func Parse(tokens string) (*Hand, error) {
	tokens = strings.TrimSpace(tokens)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("hand %q has an odd number of characters", tokens)
	}
	var cards []card.Card
	for i := 0; i < len(tokens); i += 2 {
		c, err := card.Parse(tokens[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return New(cards...)
}

// Deal draws up to n cards from the deck without exceeding capacity
func (h *Hand) Deal(d *deck.Deck, n int) int {
	dealt := 0
	for dealt < n && len(h.cards) < Capacity {
		c, ok := d.Draw()
		if !ok {
			break
		}
		h.cards = append(h.cards, c)
		dealt++
	}
	return dealt
}

// Refill tops the hand up to capacity; no draw happens once the deck is exhausted
func (h *Hand) Refill(d *deck.Deck) int {
	return h.Deal(d, Capacity-len(h.cards))
}

// Take removes the card at index i (0-based), shifting later cards left
func (h *Hand) Take(i int) (card.Card, error) {
	if i < 0 || i >= len(h.cards) {
		return card.Card{}, fmt.Errorf("card index %d outside hand of %d", i, len(h.cards))
	}
	c := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return c, nil
}

// Len returns the number of cards held
func (h *Hand) Len() int { return len(h.cards) }

// Cards returns a copy of the held cards in order
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// String returns the concatenated tokens used by save files
func (h *Hand) String() string {
	var sb strings.Builder
	for _, c := range h.cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}

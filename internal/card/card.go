package card

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a card value or token is malformed
var ErrInvalid = errors.New("invalid card")

// Lowest and highest card numbers
const (
	MinNumber = 1
	MaxNumber = 9
)

// Card represents a numbered, suited card
type Card struct {
	Suit   byte // Single ASCII letter
	Number int  // 1-9
}

// New creates a card after validating its suit and number
func New(suit byte, number int) (Card, error) {
	if number < MinNumber || number > MaxNumber {
		return Card{}, fmt.Errorf("%w: number %d out of range %d-%d", ErrInvalid, number, MinNumber, MaxNumber)
	}
	if !isLetter(suit) {
		return Card{}, fmt.Errorf("%w: suit %q is not a letter", ErrInvalid, suit)
	}
	return Card{Suit: suit, Number: number}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and literals.
func MustNew(suit byte, number int) Card {
	c, err := New(suit, number)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse parses a two-character token such as "5A"
func Parse(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: token %q must be two characters", ErrInvalid, token)
	}
	digit := token[0]
	if digit < '0' || digit > '9' {
		return Card{}, fmt.Errorf("%w: token %q has no leading digit", ErrInvalid, token)
	}
	return New(token[1], int(digit-'0'))
}

// Player returns the player who owns cards of this suit.
// Odd suit codes belong to player 1, even codes to player 2.
func (c Card) Player() int {
	if c.Suit%2 == 1 {
		return 1
	}
	return 2
}

// String returns the card token, e.g. "5A"
func (c Card) String() string {
	return fmt.Sprintf("%d%c", c.Number, c.Suit)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

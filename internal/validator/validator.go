package validator

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the deck can be played
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	declared int
	cards    []card.Card
	extra    int
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate reads the whole deck file and reports every problem it finds
// rather than stopping at the first one. The error return is reserved for
// files that cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.readDeckFile(); err != nil {
		return v.Results, err
	}

	v.validateCount()
	v.validateSuits()
	v.validateDuplicates()

	return v.Results, nil
}

func (v *Validator) errorf(format string, a ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, a...))
}

func (v *Validator) warnf(format string, a ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, a...))
}

func (v *Validator) readDeckFile() error {
	f, err := os.Open(v.DeckPath)
	if err != nil {
		return fmt.Errorf("error opening deck file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("error reading deck file: %v", err)
		}
		v.errorf("deck file is empty")
		return nil
	}

	v.declared = -1
	if count, err := deck.ParseCount(scanner.Text()); err == nil {
		v.declared = count
	} else {
		v.errorf("line 1: %v", err)
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if v.declared >= 0 && len(v.cards) >= v.declared {
			if strings.TrimSpace(text) != "" {
				v.extra++
			}
			continue
		}
		c, err := deck.ParseLine(text)
		if err != nil {
			v.errorf("line %d: %v", lineNo, err)
			continue
		}
		v.cards = append(v.cards, c)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading deck file: %v", err)
	}
	return nil
}

// validateCount compares the declared count with the card lines present
func (v *Validator) validateCount() {
	if v.declared >= 0 && len(v.cards) < v.declared {
		v.errorf("deck declares %d cards but only %d valid card lines were found", v.declared, len(v.cards))
	}
	if v.extra > 0 {
		v.warnf("%d line(s) after the declared %d cards are ignored", v.extra, v.declared)
	}
}

// validateSuits warns about decks that favor one player or mix letter cases
func (v *Validator) validateSuits() {
	if len(v.cards) == 0 {
		return
	}

	perPlayer := [2]int{}
	var lower []string
	seenLower := map[byte]bool{}
	for _, c := range v.cards {
		perPlayer[c.Player()-1]++
		if c.Suit >= 'a' && c.Suit <= 'z' && !seenLower[c.Suit] {
			seenLower[c.Suit] = true
			lower = append(lower, string(c.Suit))
		}
	}

	for i, n := range perPlayer {
		if n == 0 {
			v.warnf("no cards with player %d suits; player %d will score 0 on any board", i+1, i+1)
		}
	}
	if len(lower) > 0 {
		sort.Strings(lower)
		v.warnf("lowercase suits %s are distinct from their uppercase letters", strings.Join(lower, ", "))
	}
}

func (v *Validator) validateDuplicates() {
	counts := map[card.Card]int{}
	for _, c := range v.cards {
		counts[c]++
	}
	var dups []string
	for c, n := range counts {
		if n > 1 {
			dups = append(dups, fmt.Sprintf("%s x%d", c, n))
		}
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		v.warnf("repeated cards: %s", strings.Join(dups, ", "))
	}
}

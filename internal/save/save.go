package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/card"
	"github.com/arcanaland/bark/internal/hand"
)

// ErrParse is returned when a save file cannot be read or is malformed
var ErrParse = errors.New("unable to parse savefile")

const emptyCell = "**"

// State is everything a save file records about a game in progress
type State struct {
	Drawn    int // Cards dealt out of the deck so far
	Turn     int // Player to move next, 1 or 2
	DeckName string
	Hands    [2]*hand.Hand
	Board    *board.Board
}

// Encode writes the state in save file format
func Encode(w io.Writer, s *State) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d %d %d\n", s.Board.Width(), s.Board.Height(), s.Drawn, s.Turn)
	fmt.Fprintf(bw, "%s\n", s.DeckName)
	for _, h := range s.Hands {
		if h != nil {
			bw.WriteString(h.String())
		}
		bw.WriteByte('\n')
	}

	for row := 1; row <= s.Board.Height(); row++ {
		for col := 1; col <= s.Board.Width(); col++ {
			if c, ok := s.Board.At(board.Pos{Col: col, Row: row}); ok {
				bw.WriteString(c.String())
			} else {
				bw.WriteString(emptyCell)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Decode reads a save file
func Decode(r io.Reader) (*State, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	next := func() (string, error) {
		line++
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("%w: %v", ErrParse, err)
			}
			return "", fmt.Errorf("%w: unexpected end of file at line %d", ErrParse, line)
		}
		return scanner.Text(), nil
	}

	header, err := next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(header)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: header %q needs width, height, drawn and player", ErrParse, header)
	}
	nums := make([]int, 4)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: header field %q is not a number", ErrParse, f)
		}
		nums[i] = n
	}
	width, height := nums[0], nums[1]
	s := &State{Drawn: nums[2], Turn: nums[3]}
	if s.Drawn < 0 {
		return nil, fmt.Errorf("%w: negative drawn count %d", ErrParse, s.Drawn)
	}
	if s.Turn != 1 && s.Turn != 2 {
		return nil, fmt.Errorf("%w: player %d must be 1 or 2", ErrParse, s.Turn)
	}
	if s.Board, err = board.New(width, height); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	deckLine, err := next()
	if err != nil {
		return nil, err
	}
	if s.DeckName = strings.TrimSpace(deckLine); s.DeckName == "" {
		return nil, fmt.Errorf("%w: missing deck file name", ErrParse)
	}

	for i := range s.Hands {
		tokens, err := next()
		if err != nil {
			return nil, err
		}
		if s.Hands[i], err = hand.Parse(tokens); err != nil {
			return nil, fmt.Errorf("%w: player %d hand: %v", ErrParse, i+1, err)
		}
	}

	for row := 1; row <= height; row++ {
		text, err := next()
		if err != nil {
			return nil, err
		}
		text = strings.TrimRight(text, " \r")
		if len(text) != width*2 {
			return nil, fmt.Errorf("%w: row %d has %d characters, want %d", ErrParse, row, len(text), width*2)
		}
		for col := 1; col <= width; col++ {
			token := text[(col-1)*2 : col*2]
			if token == emptyCell {
				continue
			}
			c, err := card.Parse(token)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrParse, row, col, err)
			}
			if err := s.Board.Place(board.Pos{Col: col, Row: row}, c); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
		}
	}

	return s, nil
}

// WriteFile saves the state to path
func WriteFile(path string, s *State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating save file: %v", err)
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return fmt.Errorf("error writing save file: %v", err)
	}
	return f.Close()
}

// ReadFile loads a save file from path
func ReadFile(path string) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()
	return Decode(f)
}

// ValidName reports whether name is acceptable as a save file name.
// A name needs at least one letter.
func ValidName(name string) bool {
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

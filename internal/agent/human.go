package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/game"
	"github.com/arcanaland/bark/internal/rules"
	"github.com/arcanaland/bark/internal/save"
)

const (
	movePrompt = "Move? "
	saveCmd    = "SAVE"
	minMoveLen = 5 // shortest "c x y" line
)

// Human reads moves typed as "card column row". A line starting with SAVE
// writes the game to the file named after it and asks again.
type Human struct {
	player int
	in     *bufio.Reader
	out    io.Writer
}

func NewHuman(player int, in io.Reader, out io.Writer) *Human {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Human{player: player, in: br, out: out}
}

func (h *Human) Automated() bool { return false }

// ProposeMove prompts until the player enters a playable move
func (h *Human) ProposeMove(g *game.Game) (game.Move, error) {
	for {
		fmt.Fprint(h.out, movePrompt)
		line, err := h.readLine()
		if err != nil {
			return game.Move{}, err
		}

		if name, ok := strings.CutPrefix(line, saveCmd); ok {
			if err := h.save(g, name); err != nil {
				fmt.Fprintln(h.out, "Unable to save")
			}
			continue
		}

		if move, ok := parseMove(line, g); ok {
			return move, nil
		}
	}
}

func (h *Human) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", ErrEndOfInput
		}
		return "", fmt.Errorf("reading move: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (h *Human) save(g *game.Game, name string) error {
	if !save.ValidName(name) {
		return fmt.Errorf("invalid save name %q", name)
	}
	return save.WriteFile(name, g.Snapshot())
}

// parseMove turns "card col row" into a move, rejecting anything the game
// would not accept.
func parseMove(line string, g *game.Game) (game.Move, bool) {
	if len(line) < minMoveLen {
		return game.Move{}, false
	}
	var index, col, row int
	if n, _ := fmt.Sscanf(line, "%d %d %d", &index, &col, &row); n != 3 {
		return game.Move{}, false
	}

	b := g.Board()
	if index < 1 || index > len(g.Hand(g.Turn())) {
		return game.Move{}, false
	}
	pos := board.Pos{Col: col, Row: row}
	if !b.Contains(pos) || !rules.IsLegal(b, pos) {
		return game.Move{}, false
	}
	return game.Move{Index: index - 1, Pos: pos}, true
}

package agent

import (
	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/game"
	"github.com/arcanaland/bark/internal/rules"
)

// Auto always plays its first card. On an empty board it takes the centre;
// otherwise player 1 scans from the top-left and player 2 from the bottom-right.
type Auto struct {
	player int
}

func NewAuto(player int) *Auto {
	return &Auto{player: player}
}

func (a *Auto) Automated() bool { return true }

func (a *Auto) ProposeMove(g *game.Game) (game.Move, error) {
	b := g.Board()
	if b.IsEmpty() {
		return game.Move{Pos: board.Pos{Col: (b.Width() + 1) / 2, Row: (b.Height() + 1) / 2}}, nil
	}

	positions := b.Positions()
	if a.player == 2 {
		for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
			positions[i], positions[j] = positions[j], positions[i]
		}
	}
	for _, pos := range positions {
		if rules.IsLegal(b, pos) {
			return game.Move{Pos: pos}, nil
		}
	}
	// Only reachable on a full board, which the game never asks about
	return game.Move{}, game.ErrGameOver
}

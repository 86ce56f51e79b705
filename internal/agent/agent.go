// Package agent provides the move sources a game can be played with: a person
// typing moves at a prompt, or a fixed automated policy.
package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arcanaland/bark/internal/game"
)

var (
	// ErrEndOfInput is returned when a human agent's input closes mid-game
	ErrEndOfInput = errors.New("end of input")
	// ErrUnknownKind is returned for a player type other than "h" or "a"
	ErrUnknownKind = errors.New("unknown player type")
)

const (
	KindHuman     = "h"
	KindAutomated = "a"
)

// New builds the agent for player (1 or 2) from its type flag
func New(kind string, player int, in io.Reader, out io.Writer) (game.Agent, error) {
	if player != 1 && player != 2 {
		return nil, fmt.Errorf("player %d must be 1 or 2", player)
	}
	switch kind {
	case KindHuman:
		return NewHuman(player, in, out), nil
	case KindAutomated:
		return NewAuto(player), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// NewPair builds both agents. Human agents share one buffered reader so that
// input typed ahead is not lost between players.
func NewPair(kinds [2]string, in io.Reader, out io.Writer) ([2]game.Agent, error) {
	var agents [2]game.Agent
	br := bufio.NewReader(in)
	for i, kind := range kinds {
		a, err := New(kind, i+1, br, out)
		if err != nil {
			return agents, err
		}
		agents[i] = a
	}
	return agents, nil
}

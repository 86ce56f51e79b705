package cmd

import (
	"errors"

	"github.com/arcanaland/bark/internal/agent"
	"github.com/arcanaland/bark/internal/deck"
	"github.com/arcanaland/bark/internal/game"
	"github.com/arcanaland/bark/internal/save"
)

// Process exit codes
const (
	ExitUsage      = 1
	ExitBadArgs    = 2
	ExitDeckParse  = 3
	ExitSaveParse  = 4
	ExitShortDeck  = 5
	ExitBoardFull  = 6
	ExitEndOfInput = 7
)

const usage = "Usage: bark savefile p1type p2type\nbark deck width height p1type p2type"

// errBadArgs marks argument values outside what a game accepts
var errBadArgs = errors.New("incorrect arg types")

// ExitError carries the process exit code for a failed game command
type ExitError struct {
	Code int
	Msg  string
	Err  error
}

func (e *ExitError) Error() string { return e.Msg }

func (e *ExitError) Unwrap() error { return e.Err }

// exitError classifies err into the exit code and message players expect.
// Errors it does not recognise pass through unchanged.
func exitError(err error) error {
	var exitErr *ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, agent.ErrEndOfInput):
		return &ExitError{Code: ExitEndOfInput, Msg: "End of input", Err: err}
	case errors.Is(err, game.ErrBoardFull):
		return &ExitError{Code: ExitBoardFull, Msg: "Board full", Err: err}
	case errors.Is(err, deck.ErrShortDeck):
		return &ExitError{Code: ExitShortDeck, Msg: "Short deck", Err: err}
	case errors.Is(err, save.ErrParse):
		return &ExitError{Code: ExitSaveParse, Msg: "Unable to parse savefile", Err: err}
	case errors.Is(err, deck.ErrParse):
		return &ExitError{Code: ExitDeckParse, Msg: "Unable to parse deckfile", Err: err}
	case errors.Is(err, errBadArgs), errors.Is(err, agent.ErrUnknownKind):
		return &ExitError{Code: ExitBadArgs, Msg: "Incorrect arg types", Err: err}
	}
	return err
}

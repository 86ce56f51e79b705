package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bark/internal/agent"
	"github.com/arcanaland/bark/internal/board"
	"github.com/arcanaland/bark/internal/config"
	"github.com/arcanaland/bark/internal/deck"
	"github.com/arcanaland/bark/internal/game"
	"github.com/arcanaland/bark/internal/render"
	"github.com/arcanaland/bark/internal/save"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [deck] <width> <height> <p1type> <p2type>",
	Short: "Start a new game",
	Long: `New deals a fresh game from a deck file. The deck is looked up in your deck
library (XDG_DATA_HOME/bark/decks) first, then as a path. Without a deck
argument the default deck from your config is used.

Width and height must be between 2 and 101. Player types are 'h' or 'a'.`,
	Args: cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 5 {
			return runNew(cmd, args[0], args[1:])
		}
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %v", err)
		}
		return runNew(cmd, defaultDeck, args)
	},
}

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <savefile> <p1type> <p2type>",
	Short: "Resume a saved game",
	Long: `Load resumes a game written with SAVE<filename> at the move prompt. The deck
named in the save file is read again and play continues with the saved player.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd, args[0], args[1:])
	},
}

func init() {
	RootCmd.AddCommand(newCmd)
	RootCmd.AddCommand(loadCmd)
}

// runNew starts a game; rest holds width, height and both player types
func runNew(cmd *cobra.Command, deckName string, rest []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	kinds, err := parseKinds(rest[2], rest[3])
	if err != nil {
		return s.fail(err)
	}
	width, err := parseDimension("width", rest[0])
	if err != nil {
		return s.fail(err)
	}
	height, err := parseDimension("height", rest[1])
	if err != nil {
		return s.fail(err)
	}

	deckPath := deckName
	if resolved, err := config.GetDeckPath(deckName); err == nil {
		deckPath = resolved
	}
	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return s.fail(err)
	}

	rep := render.NewConsole(cmd.OutOrStdout(), s.color)
	agents, err := agent.NewPair(kinds, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return s.fail(err)
	}
	g, err := game.New(game.Options{
		Deck:     d,
		Width:    width,
		Height:   height,
		Agents:   agents,
		Reporter: rep,
		Logger:   s.log,
	})
	if err != nil {
		return s.fail(err)
	}

	rep.Board(g.Board())
	return s.play(g)
}

// runLoad resumes a saved game; kinds holds both player types
func runLoad(cmd *cobra.Command, savePath string, kinds []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	pair, err := parseKinds(kinds[0], kinds[1])
	if err != nil {
		return s.fail(err)
	}
	st, err := save.ReadFile(savePath)
	if err != nil {
		return s.fail(err)
	}
	d, err := deck.LoadDeck(st.DeckName)
	if err != nil {
		return s.fail(err)
	}

	rep := render.NewConsole(cmd.OutOrStdout(), s.color)
	rep.Board(st.Board)

	agents, err := agent.NewPair(pair, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return s.fail(err)
	}
	g, err := game.Resume(game.Options{
		Deck:     d,
		Agents:   agents,
		Reporter: rep,
		Logger:   s.log,
	}, st)
	if err != nil {
		return s.fail(err)
	}
	return s.play(g)
}

func (s *settings) play(g *game.Game) error {
	if _, err := g.Run(); err != nil {
		return s.fail(err)
	}
	return nil
}

// fail logs the underlying cause and converts err to its exit error
func (s *settings) fail(err error) error {
	s.log.WithError(err).Debug("game command failed")
	return exitError(err)
}

func parseKinds(p1, p2 string) ([2]string, error) {
	kinds := [2]string{p1, p2}
	for i, k := range kinds {
		if k != agent.KindHuman && k != agent.KindAutomated {
			return kinds, fmt.Errorf("%w: player %d type %q", errBadArgs, i+1, k)
		}
	}
	return kinds, nil
}

func parseDimension(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < board.MinSize || n > board.MaxSize {
		return 0, fmt.Errorf("%w: %s %q must be %d-%d", errBadArgs, name, value, board.MinSize, board.MaxSize)
	}
	return n, nil
}


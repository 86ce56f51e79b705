package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/bark/internal/render"
	"github.com/arcanaland/bark/internal/save"
	"github.com/arcanaland/bark/internal/scoring"
)

var showCmd = &cobra.Command{
	Use:   "show <savefile>",
	Short: "Display a saved game",
	Long: `Show draws the board of a save file with a summary beside it: the deck,
cards drawn, the player to move, both hands and the current scores.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		st, err := save.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error loading save file: %w", err)
		}
		res := scoring.Score(st.Board)

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprint(out, render.SideBySide(
			render.BoardLines(st.Board, s.color),
			render.Summary(st, res, s.color),
			width,
		))
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

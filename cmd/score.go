package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bark/internal/render"
	"github.com/arcanaland/bark/internal/save"
	"github.com/arcanaland/bark/internal/scoring"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score <savefile>",
	Short: "Score the board of a saved game",
	Long: `Score prints the board of a save file followed by each player's best score,
as it would be scored if the game ended now.

Examples:
  bark score game.sav
  bark score game.sav --cells
  bark score game.sav --heatmap scores.png --scale 24`,
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

		out := cmd.OutOrStdout()
		rep := render.NewConsole(out, s.color)
		rep.Board(st.Board)

		if cells, _ := cmd.Flags().GetBool("cells"); cells {
			fmt.Fprintln(out)
			for _, line := range render.ScoreLines(res, st.Board) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
		}
		rep.Final(res)

		heatmap, _ := cmd.Flags().GetString("heatmap")
		if heatmap == "" {
			return nil
		}
		scale, _ := cmd.Flags().GetInt("scale")
		if scale <= 0 {
			scale = s.config.HeatmapScale
		}
		if err := render.WriteHeatmap(heatmap, st.Board, res, scale); err != nil {
			return err
		}
		s.log.WithField("path", heatmap).Info("heatmap written")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().Bool("cells", false, "Print the score of every card")
	scoreCmd.Flags().String("heatmap", "", "Write a PNG heatmap of cell scores to this file")
	scoreCmd.Flags().Int("scale", 0, "Heatmap pixels per board cell (default from config)")
}

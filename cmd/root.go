package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/bark/internal/config"
	"github.com/arcanaland/bark/internal/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bark [deck width height p1type p2type | savefile p1type p2type]",
	Short: "Two-player card placement game on a wraparound board",
	Long: `Bark is a two-player card game played on a board whose edges wrap around.
Players take turns placing numbered, suited cards next to cards already on the
board. When the deck runs out or the board fills, each card is scored by the
longest increasing run leading away from it that ends in its own suit.

Player types are 'h' for a person at the keyboard and 'a' for the automated player.

Examples:
  bark standard.deck 9 7 h a
  bark game.sav a h`,
	Args: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0, 3, 5:
			return nil
		}
		return &ExitError{Code: ExitUsage, Msg: usage}
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 5:
			return runNew(cmd, args[0], args[1:])
		case 3:
			return runLoad(cmd, args[0], args[1:])
		}
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	RootCmd.PersistentFlags().String("color", "", "Color output: auto, always or never; overrides the config file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// settings are the config file values merged with command line overrides
type settings struct {
	config *config.Config
	log    *logrus.Logger
	color  bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, cfgErr := config.LoadConfig()
	if cfgErr != nil {
		cfg = config.Default()
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if cfgErr != nil {
		logger.WithError(cfgErr).Warn("using default configuration")
	}

	if mode, _ := cmd.Flags().GetString("color"); mode != "" {
		cfg.Color = mode
	}
	useColor, err := colorEnabled(cfg.Color)
	if err != nil {
		return nil, err
	}
	colorize.NoColor = !useColor

	return &settings{config: cfg, log: logger, color: useColor}, nil
}

func colorEnabled(mode string) (bool, error) {
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto, "":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
}

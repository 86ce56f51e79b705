package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/bark/internal/config"
	"github.com/arcanaland/bark/internal/deck"
)

// starterDeck is written by 'deck init' so a first game needs no setup
const starterDeck = "standard.deck"

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing deck files in your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'bark deck init' to create it.")
			return nil
		}
		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %v", err)
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %v", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %v", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
			return nil
		}

		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			info, err := os.Stat(entryPath)
			if err != nil || info.IsDir() {
				continue
			}

			d, err := deck.LoadDeck(entryPath)
			if err != nil {
				// Not a valid deck, skip
				continue
			}

			if entry.Name() == defaultDeck {
				fmt.Fprintf(out, "* %s (%d cards) [DEFAULT]\n", entry.Name(), d.Len())
			} else {
				fmt.Fprintf(out, "  %s (%d cards)\n", entry.Name(), d.Len())
			}
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default <deck_name>",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		// Make sure it is playable before making it the default
		if _, err := deck.LoadDeck(deckPath); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %v", err)
		}
		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		starterPath := filepath.Join(libraryPath, starterDeck)
		if _, err := os.Stat(starterPath); os.IsNotExist(err) {
			if err := deck.WriteFile(starterPath, deck.Standard("ABCD")); err != nil {
				return err
			}
			fmt.Fprintln(out, "Starter deck written to:", starterPath)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		if cfg.DefaultDeck == "" {
			if err := config.SetDefaultDeck(starterDeck); err != nil {
				return fmt.Errorf("error setting default deck: %v", err)
			}
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}

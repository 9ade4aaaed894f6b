package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomhutch/minesweeper-go/internal/factory"
)

var (
	cfg        *Config
	app        *factory.App
	verbose    bool
	playerName string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Grid-based mine-detection puzzle game",
		Long: `minesweeper generates mine-detection puzzles and plays them from the
terminal.

A game can be created at a fixed difficulty (easy, intermediate, expert) or
from an explicit layout file where each line is one board row of 0s and 1s.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = InitConfig(); err != nil {
				return err
			}
			if playerName != "" {
				cfg.PlayerName = playerName
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			app = factory.New(factory.Config{Logger: logger})
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&playerName, "player", "p", "", "Player name to act as (overrides config)")

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

func newConfigCmd() *cobra.Command {
	var (
		playerName string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the stored configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			if playerName != "" {
				cfg.PlayerName = playerName
				changed = true
			}
			if difficulty != "" {
				if _, err := model.ParseDifficulty(difficulty); err != nil {
					return err
				}
				cfg.DefaultDifficulty = difficulty
				changed = true
			}

			if changed {
				if err := cfg.Save(); err != nil {
					return err
				}
			}

			fmt.Printf("player_name: %s\n", cfg.PlayerName)
			fmt.Printf("default_difficulty: %s\n", cfg.DefaultDifficulty)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "Set the player name")
	cmd.Flags().StringVar(&difficulty, "default-difficulty", "", "Set the default difficulty")

	return cmd
}

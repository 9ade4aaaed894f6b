package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomhutch/minesweeper-go/internal/layout"
	"github.com/tomhutch/minesweeper-go/internal/model"
)

func newNewCmd() *cobra.Command {
	var (
		difficulty   string
		layoutPath   string
		showSolution bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a game and print its starting board",
		RunE: func(cmd *cobra.Command, args []string) error {
			game, _, err := createGame(cmd.Context(), difficulty, layoutPath)
			if err != nil {
				return err
			}

			fmt.Printf("Game %s (%dx%d, %d mines)\n",
				game.ID, game.Board.XSize(), game.Board.YSize(), game.MineCount())
			fmt.Print(RenderPlayerBoard(game.Board))
			if showSolution {
				fmt.Println("Solution:")
				fmt.Print(RenderSolutionBoard(game.Solution))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Difficulty: easy, intermediate, expert")
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "Path to an explicit 0/1 mine layout file")
	cmd.Flags().BoolVar(&showSolution, "show-solution", false, "Also print the derived solution board")

	return cmd
}

// createGame builds a game from either a difficulty or a layout file, and
// registers the configured player so flag actions can be attributed
func createGame(ctx context.Context, difficulty, layoutPath string) (*model.Game, model.PlayerID, error) {
	player := &model.Player{
		ID:          model.PlayerID(cfg.PlayerName),
		DisplayName: cfg.PlayerName,
		CreatedAt:   app.Clock.Now(),
	}
	if err := app.Storage.SavePlayer(ctx, player); err != nil {
		return nil, "", err
	}

	if layoutPath != "" {
		rows, err := layout.ParseFile(layoutPath)
		if err != nil {
			return nil, "", err
		}
		game, err := app.GameController.CreateGameFromLayout(ctx, []model.PlayerID{player.ID}, rows)
		return game, player.ID, err
	}

	if difficulty == "" {
		difficulty = cfg.DefaultDifficulty
	}
	d, err := model.ParseDifficulty(difficulty)
	if err != nil {
		return nil, "", err
	}
	game, err := app.GameController.CreateGame(ctx, []model.PlayerID{player.ID}, d)
	return game, player.ID, err
}

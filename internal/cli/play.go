package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

func newPlayCmd() *cobra.Command {
	var (
		difficulty string
		layoutPath string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively on stdin",
		Long: `play creates a game and reads one command per line from stdin:

  reveal <x> <y>
  flag <x> <y>
  unflag <x> <y>
  forfeit
  quit

The board is printed after every move until the game is won or lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			game, playerID, err := createGame(ctx, difficulty, layoutPath)
			if err != nil {
				return err
			}

			fmt.Printf("Game %s (%dx%d, %d mines)\n",
				game.ID, game.Board.XSize(), game.Board.YSize(), game.MineCount())
			fmt.Print(RenderPlayerBoard(game.Board))

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" {
					return nil
				}

				if line == "forfeit" {
					game, err = app.GameController.Forfeit(ctx, game.ID, playerID)
					if err != nil {
						return err
					}
					fmt.Print(RenderGame(game))
					return nil
				}

				action, err := parseAction(line, playerID)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %s\n", err)
					continue
				}

				game, err = app.GameController.Apply(ctx, game.ID, action)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %s\n", err)
					continue
				}

				fmt.Print(RenderGame(game))
				if game.IsOver() {
					return nil
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Difficulty: easy, intermediate, expert")
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "Path to an explicit 0/1 mine layout file")

	return cmd
}

// parseAction turns a "reveal 2 0" style line into an Action
func parseAction(line string, playerID model.PlayerID) (model.Action, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return model.Action{}, fmt.Errorf("expected '<reveal|flag|unflag> <x> <y>', got %q", line)
	}

	var kind model.ActionKind
	switch fields[0] {
	case "reveal":
		kind = model.ActionReveal
	case "flag":
		kind = model.ActionFlag
	case "unflag":
		kind = model.ActionUnflag
	default:
		return model.Action{}, fmt.Errorf("unknown command %q", fields[0])
	}

	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Action{}, fmt.Errorf("invalid x coordinate %q", fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return model.Action{}, fmt.Errorf("invalid y coordinate %q", fields[2])
	}

	return model.Action{
		Kind:     kind,
		Pos:      model.Coordinate{X: x, Y: y},
		PlayerID: playerID,
	}, nil
}

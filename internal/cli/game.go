package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameRevealCmd())
	cmd.AddCommand(newGameFlagCmd())
	cmd.AddCommand(newGameUnflagCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var (
		preset string
		height int
		width  int
		mines  int
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if height > 0 || width > 0 {
				req["height"] = height
				req["width"] = width
				req["mines"] = mines
			} else if preset != "" {
				req["preset"] = preset
			}

			var result GameView
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Board preset: beginner, intermediate, expert")
	cmd.Flags().IntVar(&height, "height", 0, "Board height (overrides preset)")
	cmd.Flags().IntVar(&width, "width", 0, "Board width (overrides preset)")
	cmd.Flags().IntVar(&mines, "mines", 0, "Mine count (overrides preset)")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game_id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameView
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList
			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRevealCmd() *cobra.Command {
	return newCellMoveCmd("reveal", "Reveal a cell")
}

func newGameFlagCmd() *cobra.Command {
	return newCellMoveCmd("flag", "Flag a cell as a suspected mine")
}

func newGameUnflagCmd() *cobra.Command {
	return newCellMoveCmd("unflag", "Remove a flag from a cell")
}

// newCellMoveCmd builds a command for the cell-addressed move endpoints
func newCellMoveCmd(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <game_id> <row> <col>", verb),
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			req := map[string]int{"row": row, "col": col}
			var result GameView

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/%s", args[0], verb), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game_id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

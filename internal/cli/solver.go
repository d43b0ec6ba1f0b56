package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solver",
		Short: "Solver commands",
	}

	cmd.AddCommand(newSolverStepCmd())
	cmd.AddCommand(newSolverAutoplayCmd())
	cmd.AddCommand(newSolverKnowledgeCmd())

	return cmd
}

func newSolverStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step <game_id>",
		Short: "Let the solver make one move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SolverView
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/solver/step", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSolverAutoplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autoplay <game_id>",
		Short: "Let the solver play the game to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SolverView
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/solver/autoplay", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSolverKnowledgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "knowledge <game_id>",
		Short: "Show what the agent has deduced about a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result KnowledgeView
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/knowledge", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/astar"
	"github.com/pdrpinto/astar/goap"
	"github.com/pdrpinto/astar/internal/scenario"
)

var planCmd = &cobra.Command{
	Use:   "plan <scenario.yaml>",
	Short: "Find a sequence of actions reaching the goal",
	Long:  `Loads an action set with start and goal world states and prints the actions in execution order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, path string) error {
	logger := loggerFor(cmd)
	problem, err := scenario.LoadPlanning(path)
	if err != nil {
		return err
	}
	planner, start, goal, err := problem.Build(
		goap.WithLogger(logger),
		goap.WithEngineOptions(astar.WithMaxExpansions(maxExpansions(cmd))),
	)
	if err != nil {
		return err
	}

	plan, err := planner.Plan(start, goal)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if !plan.Found {
		fmt.Fprintln(out, "no plan found")
		return nil
	}
	if len(plan.Actions) == 0 {
		fmt.Fprintln(out, "goal already satisfied")
	}
	for i, action := range plan.Actions {
		fmt.Fprintf(out, "%d. %s (%g)\n", i+1, action.Name(), action.Cost())
	}
	fmt.Fprintf(out, "total cost: %g\n", plan.Cost)
	return nil
}

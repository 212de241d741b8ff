package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/astar"
	"github.com/pdrpinto/astar/internal/scenario"
)

var routeCmd = &cobra.Command{
	Use:   "route <scenario.yaml>",
	Short: "Find the cheapest route through a waypoint graph",
	Long:  `Loads waypoints and weighted edges and prints the route from start to goal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoute(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, path string) error {
	logger := loggerFor(cmd)
	problem, err := scenario.LoadNavigation(path)
	if err != nil {
		return err
	}
	mesh, start, goal, err := problem.Build()
	if err != nil {
		return err
	}

	route, err := mesh.Route(start, goal,
		astar.WithLogger(logger),
		astar.WithMaxExpansions(maxExpansions(cmd)),
	)
	if err != nil {
		return fmt.Errorf("routing failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if !route.Found {
		fmt.Fprintln(out, "no route found")
		return nil
	}
	for _, waypoint := range route.Waypoints {
		fmt.Fprintln(out, waypoint)
	}
	fmt.Fprintf(out, "total cost: %g\n", route.Cost)
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/astar/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:          "astar",
	Short:        "astar runs A* searches over action sets and waypoint graphs",
	Long:         `astar loads a planning or navigation scenario from YAML and prints the plan or route found.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Log search diagnostics to stderr")
	rootCmd.PersistentFlags().Int("max-expansions", 0, "Give up after expanding this many nodes (0 means no limit)")
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

func maxExpansions(cmd *cobra.Command) int {
	n, _ := cmd.Flags().GetInt("max-expansions")
	return n
}

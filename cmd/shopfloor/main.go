package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/cli"
	"github.com/example/shopfloor/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "shopfloor",
		Short:   "shopfloor - manufacturing tracking system",
		Version: version.String(),
		Long: `shopfloor is a CLI tool for tracking products through an ordered
sequence of production departments, with an append-only movement ledger
and per-client summaries.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.DepartmentCmd())
	rootCmd.AddCommand(cli.ProductCmd())
	rootCmd.AddCommand(cli.LeaderCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.MenuCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

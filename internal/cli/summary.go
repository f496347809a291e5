package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/wire"
)

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-client product counts",
		Long: `Show a summary of products grouped by client.

For each client: total products, how many are completed, and how many
are still in the pipeline.

Example:
  shopfloor summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summaries, err := wire.SummaryService().ClientSummary(ctx)
			if err != nil {
				return fmt.Errorf("failed to build summary: %w", err)
			}

			if len(summaries) == 0 {
				fmt.Println("No products found.")
				return nil
			}

			fmt.Println()
			fmt.Printf("%-20s %8s %10s %10s\n", "Client", "Total", "Completed", "Pipeline")
			fmt.Println("──────────────────────────────────────────────────")
			for _, s := range summaries {
				completed := fmt.Sprintf("%d", s.Completed)
				if s.Completed > 0 {
					completed = color.New(color.FgGreen).Sprintf("%d", s.Completed)
				}
				pipeline := fmt.Sprintf("%d", s.Pipeline)
				if s.Pipeline > 0 {
					pipeline = color.New(color.FgYellow).Sprintf("%d", s.Pipeline)
				}
				fmt.Printf("%-20s %8d %10s %10s\n", s.Client, s.Total, completed, pipeline)
			}
			fmt.Println()
			return nil
		},
	}
}

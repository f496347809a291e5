package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/wire"
)

var leaderCmd = &cobra.Command{
	Use:   "leader",
	Short: "Manage team leaders",
	Long:  "Assign team leaders to departments. Each department holds at most one leader.",
}

var leaderAddCmd = &cobra.Command{
	Use:   "add [name] [department-id]",
	Short: "Assign a team leader to a department",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]
		departmentID, err := parseID(args[1], "department")
		if err != nil {
			return err
		}

		leader, err := wire.LeaderService().AddLeader(ctx, name, departmentID)
		if err != nil {
			return fmt.Errorf("failed to add leader: %w", err)
		}

		fmt.Printf("✓ %s now leads %s\n", leader.Name, leader.Department)
		return nil
	},
}

var leaderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team leaders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		leaders, err := wire.LeaderService().ListLeaders(ctx)
		if err != nil {
			return fmt.Errorf("failed to list leaders: %w", err)
		}

		if len(leaders) == 0 {
			fmt.Println("No team leaders found.")
			return nil
		}

		fmt.Printf("Found %d leader(s):\n\n", len(leaders))
		for _, l := range leaders {
			department := l.Department
			if department == "" {
				department = "unassigned"
			}
			fmt.Printf("  %-20s leads %s\n", l.Name, department)
		}
		return nil
	},
}

var leaderDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Remove a team leader",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]

		deleted, err := wire.LeaderService().DeleteLeader(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to delete leader: %w", err)
		}
		if !deleted {
			fmt.Printf("Leader %q not found.\n", name)
			return nil
		}

		fmt.Printf("✓ Removed leader %s\n", name)
		return nil
	},
}

func init() {
	leaderCmd.AddCommand(leaderAddCmd)
	leaderCmd.AddCommand(leaderListCmd)
	leaderCmd.AddCommand(leaderDeleteCmd)
}

// LeaderCmd returns the leader command
func LeaderCmd() *cobra.Command {
	return leaderCmd
}

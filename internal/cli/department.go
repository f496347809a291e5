package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/wire"
)

var departmentCmd = &cobra.Command{
	Use:   "department",
	Short: "Manage the department sequence",
	Long:  "Add, list, and remove departments in the ordered production flow",
}

var departmentAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a department to the sequence",
	Long: `Add a department to the production sequence.

By default the department is appended at the end. With --before it takes
the named department's position and everything from there shifts back.

Examples:
  shopfloor department add "Quality Control"
  shopfloor department add Painting --before Dispatch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]
		before, _ := cmd.Flags().GetString("before")

		department, err := wire.DepartmentService().AddDepartment(ctx, name, before)
		if err != nil {
			return fmt.Errorf("failed to add department: %w", err)
		}

		fmt.Printf("✓ Added department %s at position %d\n", department.Name, department.Position)
		return nil
	},
}

var departmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments in sequence order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		departments, err := wire.DepartmentService().ListDepartments(ctx)
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}

		if len(departments) == 0 {
			fmt.Println("No departments found.")
			fmt.Println()
			fmt.Println("💡 Add one:")
			fmt.Println("   shopfloor department add Design")
			return nil
		}

		fmt.Printf("Production sequence (%d departments):\n\n", len(departments))
		for _, d := range departments {
			fmt.Printf("  %d. %s\n", d.Position, d.Name)
		}
		return nil
	},
}

var departmentDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Remove a department from the sequence",
	Long: `Remove a department by name, closing the gap in the sequence.

Products currently in the department keep their reference and will need
manual reassignment before they can advance.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]

		deleted, err := wire.DepartmentService().DeleteDepartment(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to delete department: %w", err)
		}
		if !deleted {
			fmt.Printf("Department %q not found.\n", name)
			return nil
		}

		fmt.Printf("✓ Deleted department %s\n", name)
		return nil
	},
}

func init() {
	departmentAddCmd.Flags().StringP("before", "b", "", "Insert before this department")

	departmentCmd.AddCommand(departmentAddCmd)
	departmentCmd.AddCommand(departmentListCmd)
	departmentCmd.AddCommand(departmentDeleteCmd)
}

// DepartmentCmd returns the department command
func DepartmentCmd() *cobra.Command {
	return departmentCmd
}

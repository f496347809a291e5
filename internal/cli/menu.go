package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/config"
	"github.com/example/shopfloor/internal/db"
	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/wire"
)

// MenuCmd returns the interactive menu command
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive shop-floor menu",
		Long: `Run a numbered menu loop for shop-floor operators who work the
system from a single terminal rather than through subcommands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			if cfg, err := config.LoadHomeConfig(); err == nil && cfg.Operator != "" {
				fmt.Printf("Welcome back, %s.\n", cfg.Operator)
			}
			runMenu(bufio.NewScanner(os.Stdin))
			return nil
		},
	}
}

// runMenu drives the interactive loop until the operator exits or input
// runs out.
func runMenu(scanner *bufio.Scanner) {
	ctx := context.Background()
	for {
		fmt.Println()
		fmt.Println("🏭 MANUFACTURING TRACKING SYSTEM")
		fmt.Println("--------------------------------")
		fmt.Println("1. Add Department")
		fmt.Println("2. Add Team Leader")
		fmt.Println("3. Add Product")
		fmt.Println("4. Move Product")
		fmt.Println("5. Delete Product")
		fmt.Println("6. List All Products & Current Departments")
		fmt.Println("7. View Product Movement History")
		fmt.Println("8. View Client Summary")
		fmt.Println("9. Delete Team Leader")
		fmt.Println("10. View Departments")
		fmt.Println("11. Delete Department")
		fmt.Println("0. Exit")

		choice, ok := prompt(scanner, "\nEnter your choice (0-11): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			menuAddDepartment(ctx, scanner)
		case "2":
			menuAddLeader(ctx, scanner)
		case "3":
			menuAddProduct(ctx, scanner)
		case "4":
			menuMoveProduct(ctx, scanner)
		case "5":
			menuDeleteProduct(ctx, scanner)
		case "6":
			menuListProducts(ctx)
		case "7":
			menuProductHistory(ctx, scanner)
		case "8":
			menuClientSummary(ctx)
		case "9":
			menuDeleteLeader(ctx, scanner)
		case "10":
			menuListDepartments(ctx)
		case "11":
			menuDeleteDepartment(ctx, scanner)
		case "0":
			fmt.Println("👋 Exiting system. Goodbye!")
			return
		default:
			fmt.Println("❌ Invalid choice. Please select between 0-11.")
		}
	}
}

// prompt prints a message and reads one trimmed line. Returns false when
// stdin is exhausted.
func prompt(scanner *bufio.Scanner, message string) (string, bool) {
	fmt.Print(message)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func menuAddDepartment(ctx context.Context, scanner *bufio.Scanner) {
	menuListDepartments(ctx)

	name, ok := prompt(scanner, "\nEnter new department name: ")
	if !ok {
		return
	}
	before, ok := prompt(scanner, "Insert before which department? (empty to append): ")
	if !ok {
		return
	}

	department, err := wire.DepartmentService().AddDepartment(ctx, name, before)
	if err != nil {
		fmt.Printf("❌ Failed to add department: %v\n", err)
		return
	}
	fmt.Printf("✅ Department '%s' added at position %d.\n", department.Name, department.Position)
}

func menuListDepartments(ctx context.Context) {
	departments, err := wire.DepartmentService().ListDepartments(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to list departments: %v\n", err)
		return
	}
	fmt.Println("\n🏢 Departments (in order):")
	if len(departments) == 0 {
		fmt.Println("   No departments found.")
		return
	}
	for _, d := range departments {
		fmt.Printf(" %d. %s (ID: %d)\n", d.Position, d.Name, d.ID)
	}
}

func menuDeleteDepartment(ctx context.Context, scanner *bufio.Scanner) {
	menuListDepartments(ctx)

	name, ok := prompt(scanner, "Enter department name to delete: ")
	if !ok {
		return
	}
	deleted, err := wire.DepartmentService().DeleteDepartment(ctx, name)
	if err != nil {
		fmt.Printf("❌ Failed to delete department: %v\n", err)
		return
	}
	if !deleted {
		fmt.Println("❌ Department not found.")
		return
	}
	fmt.Printf("✅ Department '%s' deleted successfully.\n", name)
}

func menuAddLeader(ctx context.Context, scanner *bufio.Scanner) {
	leaders, err := wire.LeaderService().ListLeaders(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to list leaders: %v\n", err)
		return
	}
	fmt.Println("\n👨‍🔧 Existing Team Leaders:")
	if len(leaders) == 0 {
		fmt.Println("   No team leaders found.")
	}
	for _, l := range leaders {
		department := l.Department
		if department == "" {
			department = "Unassigned"
		}
		fmt.Printf("   ID: %d | Name: %s | Department: %s\n", l.ID, l.Name, department)
	}

	menuListDepartments(ctx)

	name, ok := prompt(scanner, "Enter team leader name: ")
	if !ok {
		return
	}
	idInput, ok := prompt(scanner, "Enter department ID to assign this leader: ")
	if !ok {
		return
	}
	departmentID, err := strconv.ParseInt(idInput, 10, 64)
	if err != nil {
		fmt.Println("⚠️ Invalid department ID.")
		return
	}

	leader, err := wire.LeaderService().AddLeader(ctx, name, departmentID)
	if err != nil {
		fmt.Printf("❌ Failed to add team leader: %v\n", err)
		return
	}
	fmt.Printf("✅ Team leader '%s' now leads %s.\n", leader.Name, leader.Department)
}

func menuDeleteLeader(ctx context.Context, scanner *bufio.Scanner) {
	name, ok := prompt(scanner, "Enter team leader name to delete: ")
	if !ok {
		return
	}
	deleted, err := wire.LeaderService().DeleteLeader(ctx, name)
	if err != nil {
		fmt.Printf("❌ Failed to delete team leader: %v\n", err)
		return
	}
	if !deleted {
		fmt.Println("❌ Team Leader not found.")
		return
	}
	fmt.Printf("✅ Team Leader '%s' deleted successfully.\n", name)
}

func menuAddProduct(ctx context.Context, scanner *bufio.Scanner) {
	client, ok := prompt(scanner, "Enter client name: ")
	if !ok {
		return
	}
	name, ok := prompt(scanner, "Enter product name: ")
	if !ok {
		return
	}
	target, ok := prompt(scanner, "Enter completion timeline (e.g. 2026-12-31): ")
	if !ok {
		return
	}

	product, err := wire.ProductService().CreateProduct(ctx, primary.CreateProductRequest{
		Name:       name,
		Client:     client,
		TargetDate: target,
	})
	if err != nil {
		fmt.Printf("❌ Failed to add product: %v\n", err)
		return
	}
	if product.Department != "" {
		fmt.Printf("✅ Product '%s' added and started in the '%s' department.\n", product.Name, product.Department)
	} else {
		fmt.Printf("✅ Product '%s' added (no departments defined yet).\n", product.Name)
	}
}

func menuListProducts(ctx context.Context) {
	products, err := wire.ProductService().ListProducts(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to list products: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Println("\n⚠️ No products found.")
		return
	}
	fmt.Println("\n📋 Products:")
	for _, p := range products {
		department := p.Department
		if department == "" {
			department = "No department"
		}
		fmt.Printf("%d. %s (%s) - Department: %s | Status: %s\n", p.ID, p.Name, p.Client, department, p.Status)
	}
}

func menuMoveProduct(ctx context.Context, scanner *bufio.Scanner) {
	menuListProducts(ctx)

	idInput, ok := prompt(scanner, "Enter Product ID to move: ")
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(idInput, 10, 64)
	if err != nil {
		fmt.Println("❌ Invalid input.")
		return
	}

	result, err := wire.FlowService().AdvanceProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, primary.ErrInconsistentState) {
			fmt.Println("❌ Product's department was removed from the flow; it needs manual reassignment.")
			return
		}
		fmt.Printf("❌ Failed to move product: %v\n", err)
		return
	}

	switch result.Outcome {
	case primary.OutcomeMoved:
		fmt.Printf("➡️ Product moved to %s\n", result.Department)
	case primary.OutcomeCompleted:
		fmt.Println("✅ Product has reached the final department. Marking as Completed.")
	case primary.OutcomeAlreadyFinal:
		fmt.Println("⚠️ Product is already completed.")
	case primary.OutcomeNotFound:
		fmt.Println("❌ Product not found.")
	}
}

func menuDeleteProduct(ctx context.Context, scanner *bufio.Scanner) {
	menuListProducts(ctx)

	idInput, ok := prompt(scanner, "Enter Product ID to delete: ")
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(idInput, 10, 64)
	if err != nil {
		fmt.Println("❌ Invalid input.")
		return
	}

	if err := wire.ProductService().DeleteProduct(ctx, productID); err != nil {
		fmt.Printf("❌ Failed to delete product: %v\n", err)
		return
	}
	fmt.Println("✅ Product deleted successfully.")
}

func menuProductHistory(ctx context.Context, scanner *bufio.Scanner) {
	idInput, ok := prompt(scanner, "Enter Product ID: ")
	if !ok {
		return
	}
	productID, err := strconv.ParseInt(idInput, 10, 64)
	if err != nil {
		fmt.Println("❌ Invalid input.")
		return
	}

	history, err := wire.ProductService().ProductHistory(ctx, productID)
	if err != nil {
		fmt.Printf("❌ Failed to get history: %v\n", err)
		return
	}
	if len(history) == 0 {
		fmt.Println("⚠️ No movement history found.")
		return
	}

	fmt.Println("\n📜 Movement History:")
	for _, entry := range history {
		when := entry.Timestamp.Format("2006-01-02 15:04:05")
		if entry.Completed {
			fmt.Printf(" - Completed at %s\n", when)
			continue
		}
		fmt.Printf(" - %s at %s\n", entry.Department, when)
	}
}

func menuClientSummary(ctx context.Context) {
	summaries, err := wire.SummaryService().ClientSummary(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to build summary: %v\n", err)
		return
	}
	if len(summaries) == 0 {
		fmt.Println("\n⚠️ No client data available.")
		return
	}

	fmt.Println("\n👥 Client Summary:")
	for _, s := range summaries {
		fmt.Printf("%s: Total: %d, Completed: %d, Pipeline: %d\n", s.Client, s.Total, s.Completed, s.Pipeline)
	}
}

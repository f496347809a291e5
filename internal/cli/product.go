package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/wire"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage tracked products",
	Long:  "Create, list, advance, and inspect products moving through the flow",
}

var productAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new product",
	Long: `Create a product for a client. It starts at the first department in
the current sequence and the creation is recorded in the movement ledger.

Examples:
  shopfloor product add Switchboard --client Acme
  shopfloor product add Busbar --client Acme --target 2026-10-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name := args[0]
		client, _ := cmd.Flags().GetString("client")
		targetDate, _ := cmd.Flags().GetString("target")

		product, err := wire.ProductService().CreateProduct(ctx, primary.CreateProductRequest{
			Name:       name,
			Client:     client,
			TargetDate: targetDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		fmt.Printf("✓ Created product %d: %s (client: %s)\n", product.ID, product.Name, product.Client)
		if product.Department != "" {
			fmt.Printf("  Starting in: %s\n", product.Department)
		} else {
			fmt.Println("  No departments defined yet; product is unassigned")
		}
		return nil
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		products, err := wire.ProductService().ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		if len(products) == 0 {
			fmt.Println("No products found.")
			return nil
		}

		fmt.Printf("Found %d product(s):\n\n", len(products))
		for _, p := range products {
			location := p.Department
			if p.Status == primary.StatusCompleted {
				location = "done"
			} else if location == "" {
				location = "unassigned"
			}
			fmt.Printf("%4d  %-20s %-12s %-10s %s\n",
				p.ID, p.Name, p.Client, formatStatus(p.Status), location)
		}
		return nil
	},
}

var productMoveCmd = &cobra.Command{
	Use:   "move [product-id]",
	Short: "Advance a product one department forward",
	Long: `Advance a product to the next department in the sequence. A product
at the last department is marked completed instead of moving.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		productID, err := parseID(args[0], "product")
		if err != nil {
			return err
		}

		result, err := wire.FlowService().AdvanceProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, primary.ErrInconsistentState) {
				return fmt.Errorf("product %d is stuck: %w\nHint: its department was removed; delete and re-create the product", productID, err)
			}
			return fmt.Errorf("failed to advance product: %w", err)
		}

		switch result.Outcome {
		case primary.OutcomeMoved:
			fmt.Printf("✓ Product %d moved to %s\n", productID, result.Department)
		case primary.OutcomeCompleted:
			fmt.Printf("✓ Product %d completed 🎉\n", productID)
		case primary.OutcomeAlreadyFinal:
			fmt.Printf("Product %d is already completed; nothing to do.\n", productID)
		case primary.OutcomeNotFound:
			fmt.Printf("Product %d not found.\n", productID)
		}
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete [product-id]",
	Short: "Delete a product",
	Long:  "Delete a product. Its movement history is kept in the ledger.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		productID, err := parseID(args[0], "product")
		if err != nil {
			return err
		}

		if err := wire.ProductService().DeleteProduct(ctx, productID); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		fmt.Printf("✓ Deleted product %d\n", productID)
		return nil
	},
}

var productHistoryCmd = &cobra.Command{
	Use:   "history [product-id]",
	Short: "Show a product's movement history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		productID, err := parseID(args[0], "product")
		if err != nil {
			return err
		}

		entries, err := wire.ProductService().ProductHistory(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No movement history for product %d.\n", productID)
			return nil
		}

		fmt.Printf("Movement history for product %d:\n\n", productID)
		for _, e := range entries {
			when := e.Timestamp.Format("2006-01-02 15:04")
			if e.Completed {
				fmt.Printf("  %s  %s\n", when, color.New(color.FgGreen).Sprint("completed"))
				continue
			}
			department := e.Department
			if department == "" {
				department = "(deleted department)"
			}
			fmt.Printf("  %s  → %s\n", when, department)
		}
		return nil
	},
}

// formatStatus renders a product status with color for terminal output
func formatStatus(status primary.Status) string {
	if status == primary.StatusCompleted {
		return color.New(color.FgGreen).Sprint(status)
	}
	return color.New(color.FgYellow).Sprint(status)
}

func init() {
	productAddCmd.Flags().StringP("client", "c", "", "Client the product is built for")
	productAddCmd.Flags().StringP("target", "t", "", "Target delivery date (YYYY-MM-DD)")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productMoveCmd)
	productCmd.AddCommand(productDeleteCmd)
	productCmd.AddCommand(productHistoryCmd)
}

// ProductCmd returns the product command
func ProductCmd() *cobra.Command {
	return productCmd
}

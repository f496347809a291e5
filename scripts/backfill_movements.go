// +build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Product represents a product record from the database
type Product struct {
	ID           int64
	Name         string
	Client       string
	DepartmentID sql.NullInt64
	CreatedAt    string
}

// Backfills creation movement events for products that predate the
// movement ledger. Each such product gets one event in its current
// department stamped with its creation time.

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview backfill without executing")
	flag.Parse()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	dbPath := filepath.Join(homeDir, ".shopfloor", "shopfloor.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	products, err := findProductsWithoutHistory(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding products: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Println("No products found to backfill")
		return
	}

	fmt.Printf("Found %d product(s) without ledger history:\n\n", len(products))

	for _, p := range products {
		fmt.Printf("  %d: %s (%s)\n", p.ID, p.Name, p.Client)
		if p.DepartmentID.Valid {
			fmt.Printf("    -> Creation event in department %d at %s\n", p.DepartmentID.Int64, p.CreatedAt)
		} else {
			fmt.Printf("    -> Creation event with no department at %s\n", p.CreatedAt)
		}
		fmt.Println()
	}

	if *dryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		return
	}

	fmt.Println("=== Executing backfill ===")
	fmt.Println()

	backfilled := 0
	for _, p := range products {
		_, err := db.Exec(
			"INSERT INTO product_movements (product_id, department_id, moved_at) VALUES (?, ?, ?)",
			p.ID, p.DepartmentID, p.CreatedAt,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error backfilling product %d: %v\n", p.ID, err)
			continue
		}

		fmt.Printf("✓ Backfilled product %d\n", p.ID)
		backfilled++
	}

	fmt.Printf("\n=== Backfill complete: %d/%d products ===\n", backfilled, len(products))
}

func findProductsWithoutHistory(db *sql.DB) ([]Product, error) {
	query := `
		SELECT p.id, p.name, p.client, p.department_id, p.created_at
		FROM products p
		LEFT JOIN product_movements m ON m.product_id = p.id
		WHERE m.id IS NULL
		ORDER BY p.id ASC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.DepartmentID, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

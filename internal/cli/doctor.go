package cli

import (
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/db"
	"github.com/example/shopfloor/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for database validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the shopfloor database",
		Long: `Health check for the shopfloor database.

Validates:
- Database file presence
- Required tables
- Department sequence contiguity
- Stranded products (department removed from the flow)
- Leader assignments pointing at missing departments
- Binary installation and PATH

Examples:
  shopfloor doctor              # Run full health check
  shopfloor doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}
			hasErrors := false

			results = append(results, checkDatabaseFile())
			results = append(results, checkTables())
			results = append(results, checkSequence())
			results = append(results, checkStrandedProducts())
			results = append(results, checkLeaderAssignments())
			results = append(results, checkBinary())

			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				// Print compact table
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				// Print details for non-passing checks
				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'shopfloor init' to repair the schema.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("database validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDatabaseFile validates that the database file exists
func checkDatabaseFile() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Database File", Status: "✗", Details: "  Cannot resolve database path"}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Database File",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found\n  Run: shopfloor init", dbPath),
		}
	}

	return CheckResult{Name: "Database File", Status: "✓"}
}

// checkTables verifies the required tables exist
func checkTables() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Tables", Status: "✗", Details: "  Cannot open database"}
	}

	required := []string{"departments", "products", "product_movements", "team_leaders"}
	missing := []string{}

	for _, table := range required {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			missing = append(missing, table)
		} else if err != nil {
			return CheckResult{Name: "Tables", Status: "✗", Details: "  Query failed: " + err.Error()}
		}
	}

	if len(missing) > 0 {
		return CheckResult{
			Name:    "Tables",
			Status:  "✗",
			Details: "  Missing: " + strings.Join(missing, ", ") + "\n  Run: shopfloor init",
		}
	}

	return CheckResult{Name: "Tables", Status: "✓"}
}

// checkSequence validates that department positions run 1..N without gaps
func checkSequence() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Sequence", Status: "✗", Details: "  Cannot open database"}
	}

	rows, err := database.Query("SELECT position FROM departments ORDER BY position")
	if err != nil {
		return CheckResult{Name: "Sequence", Status: "✗", Details: "  Query failed: " + err.Error()}
	}
	defer rows.Close()

	expected := 1
	for rows.Next() {
		var position int
		if err := rows.Scan(&position); err != nil {
			return CheckResult{Name: "Sequence", Status: "✗", Details: "  Scan failed: " + err.Error()}
		}
		if position != expected {
			return CheckResult{
				Name:    "Sequence",
				Status:  "✗",
				Details: fmt.Sprintf("  Position %d found where %d was expected\n  Department positions must run 1..N without gaps", position, expected),
			}
		}
		expected++
	}
	if err := rows.Err(); err != nil {
		return CheckResult{Name: "Sequence", Status: "✗", Details: "  " + err.Error()}
	}

	return CheckResult{Name: "Sequence", Status: "✓"}
}

// checkStrandedProducts finds in-progress products whose department no
// longer exists in the registry
func checkStrandedProducts() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Products", Status: "✗", Details: "  Cannot open database"}
	}

	rows, err := database.Query(`
		SELECT p.id, p.name FROM products p
		LEFT JOIN departments d ON p.department_id = d.id
		WHERE p.status = 'in_progress' AND p.department_id IS NOT NULL AND d.id IS NULL`)
	if err != nil {
		return CheckResult{Name: "Products", Status: "✗", Details: "  Query failed: " + err.Error()}
	}
	defer rows.Close()

	stranded := []string{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			continue
		}
		stranded = append(stranded, fmt.Sprintf("%d (%s)", id, name))
	}

	if len(stranded) > 0 {
		return CheckResult{
			Name:    "Products",
			Status:  "⚠",
			Details: "  Stranded in deleted departments: " + strings.Join(stranded, ", ") + "\n  These products cannot advance until re-created",
		}
	}

	return CheckResult{Name: "Products", Status: "✓"}
}

// checkLeaderAssignments finds leaders assigned to departments that no
// longer exist
func checkLeaderAssignments() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Leaders", Status: "✗", Details: "  Cannot open database"}
	}

	rows, err := database.Query(`
		SELECT l.name FROM team_leaders l
		LEFT JOIN departments d ON l.department_id = d.id
		WHERE l.department_id IS NOT NULL AND d.id IS NULL`)
	if err != nil {
		// Table may predate the department assignment migration
		return CheckResult{Name: "Leaders", Status: "⚠", Details: "  Query failed: " + err.Error()}
	}
	defer rows.Close()

	orphaned := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		orphaned = append(orphaned, name)
	}

	if len(orphaned) > 0 {
		return CheckResult{
			Name:    "Leaders",
			Status:  "⚠",
			Details: "  Assigned to deleted departments: " + strings.Join(orphaned, ", "),
		}
	}

	return CheckResult{Name: "Leaders", Status: "✓"}
}

// checkBinary validates shopfloor binary installation
func checkBinary() CheckResult {
	binPath, err := exec.LookPath("shopfloor")
	if err != nil {
		return CheckResult{
			Name:    "Binary",
			Status:  "⚠",
			Details: "  'shopfloor' not found in PATH\n  Run: make install",
		}
	}

	return CheckResult{Name: "Binary", Status: "✓", Details: fmt.Sprintf("  %s (%s)", binPath, version.String())}
}

package db

import (
	"database/sql"
	"fmt"
)

// defaultDepartments is the stock production flow for a fresh install.
// Dispatch sits at the highest position and acts as the terminal stage.
var defaultDepartments = []struct {
	Name     string
	Position int
}{
	{"Design", 1},
	{"Fabrication", 2},
	{"Panel Assembly", 3},
	{"Dispatch", 4},
}

// SeedDefaultDepartments inserts the stock department sequence when the
// registry is empty. Existing installs are left untouched.
func SeedDefaultDepartments(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM departments").Scan(&count); err != nil {
		return fmt.Errorf("failed to count departments: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, d := range defaultDepartments {
		if _, err := database.Exec(
			"INSERT INTO departments (name, position) VALUES (?, ?)",
			d.Name, d.Position,
		); err != nil {
			return fmt.Errorf("seed departments: %w", err)
		}
	}

	return nil
}

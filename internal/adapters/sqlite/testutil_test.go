// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema and cannot drift from production. Do not hardcode
// CREATE TABLE statements in test files; use setupTestDB() and the seed*
// helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/shopfloor/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedDepartment inserts a test department and returns its ID.
func seedDepartment(t *testing.T, db *sql.DB, name string, position int) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO departments (name, position) VALUES (?, ?)", name, position)
	if err != nil {
		t.Fatalf("failed to seed department %q: %v", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded department id: %v", err)
	}
	return id
}

// seedFlow inserts the stock four-stage flow and returns name -> ID.
func seedFlow(t *testing.T, db *sql.DB) map[string]int64 {
	t.Helper()
	ids := make(map[string]int64)
	for i, name := range []string{"Design", "Fabrication", "Panel Assembly", "Dispatch"} {
		ids[name] = seedDepartment(t, db, name, i+1)
	}
	return ids
}

// seedProduct inserts a test product and returns its ID. No ledger row is
// written; tests that need one append it explicitly.
func seedProduct(t *testing.T, db *sql.DB, name, client, status string, departmentID *int64) int64 {
	t.Helper()
	var dept sql.NullInt64
	if departmentID != nil {
		dept = sql.NullInt64{Int64: *departmentID, Valid: true}
	}
	res, err := db.Exec(
		"INSERT INTO products (name, client, target_date, department_id, status) VALUES (?, ?, '2026-12-31', ?, ?)",
		name, client, dept, status,
	)
	if err != nil {
		t.Fatalf("failed to seed product %q: %v", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded product id: %v", err)
	}
	return id
}

// countMovements returns the ledger row count for a product.
func countMovements(t *testing.T, db *sql.DB, productID int64) int {
	t.Helper()
	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM product_movements WHERE product_id = ?", productID,
	).Scan(&count); err != nil {
		t.Fatalf("failed to count movements: %v", err)
	}
	return count
}

// testClock returns strictly increasing timestamps for ledger ordering.
func testClock() func() time.Time {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
}

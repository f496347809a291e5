package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "allow_null_department_in_product_movements",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_department_assignment_to_team_leaders",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		// Begin transaction
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		// Run migration
		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// Record migration
		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		// Commit transaction
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 rebuilds product_movements so department_id allows NULL.
// Legacy databases declared it NOT NULL, which blocked the completion
// marker row (completion is recorded as a NULL-department movement).
func migrationV1(db *sql.DB) error {
	// Detect whether the column is already nullable
	rows, err := db.Query("PRAGMA table_info(product_movements)")
	if err != nil {
		return fmt.Errorf("failed to inspect product_movements: %w", err)
	}
	defer rows.Close()

	nullable := true
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to scan column info: %w", err)
		}
		if name == "department_id" {
			nullable = notNull == 0
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if nullable {
		return nil
	}

	// SQLite cannot alter column nullability in place: copy through a temp table
	_, err = db.Exec(`
		CREATE TABLE product_movements_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL,
			department_id INTEGER,
			moved_at DATETIME NOT NULL,
			FOREIGN KEY (product_id) REFERENCES products(id),
			FOREIGN KEY (department_id) REFERENCES departments(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create replacement table: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO product_movements_new (id, product_id, department_id, moved_at)
		SELECT id, product_id, department_id, moved_at FROM product_movements
	`)
	if err != nil {
		return fmt.Errorf("failed to copy movement rows: %w", err)
	}

	if _, err := db.Exec("DROP TABLE product_movements"); err != nil {
		return fmt.Errorf("failed to drop old table: %w", err)
	}
	if _, err := db.Exec("ALTER TABLE product_movements_new RENAME TO product_movements"); err != nil {
		return fmt.Errorf("failed to rename replacement table: %w", err)
	}
	_, err = db.Exec("CREATE INDEX IF NOT EXISTS idx_product_movements_product ON product_movements(product_id, moved_at)")
	return err
}

// migrationV2 adds the department assignment column to team_leaders.
// The UNIQUE index enforces at most one leader per department.
func migrationV2(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS team_leaders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure team_leaders table: %w", err)
	}

	rows, err := db.Query("PRAGMA table_info(team_leaders)")
	if err != nil {
		return fmt.Errorf("failed to inspect team_leaders: %w", err)
	}
	defer rows.Close()

	hasColumn := false
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to scan column info: %w", err)
		}
		if name == "department_id" {
			hasColumn = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if !hasColumn {
		if _, err := db.Exec("ALTER TABLE team_leaders ADD COLUMN department_id INTEGER REFERENCES departments(id)"); err != nil {
			return fmt.Errorf("failed to add department_id column: %w", err)
		}
	}

	_, err = db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_team_leaders_department ON team_leaders(department_id)")
	return err
}

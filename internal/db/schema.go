package db

// SchemaSQL is the complete modern schema for fresh shopfloor installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL(), so a repo referencing a column that does
// not exist here fails immediately with "no such column" instead of drifting.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Departments (ordered production stages; position is dense and 1-based)
CREATE TABLE IF NOT EXISTS departments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	position INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_departments_position ON departments(position);

-- Team leaders (a department has at most one leader)
CREATE TABLE IF NOT EXISTS team_leaders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	department_id INTEGER UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (department_id) REFERENCES departments(id)
);

-- Products (current department is nullable only while the registry is empty)
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	client TEXT NOT NULL,
	target_date TEXT NOT NULL DEFAULT '',
	department_id INTEGER,
	status TEXT NOT NULL CHECK(status IN ('in_progress', 'completed')) DEFAULT 'in_progress',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (department_id) REFERENCES departments(id)
);

-- Product movements (append-only ledger; NULL department marks completion)
CREATE TABLE IF NOT EXISTS product_movements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id INTEGER NOT NULL,
	department_id INTEGER,
	moved_at DATETIME NOT NULL,
	FOREIGN KEY (product_id) REFERENCES products(id),
	FOREIGN KEY (department_id) REFERENCES departments(id)
);

CREATE INDEX IF NOT EXISTS idx_product_movements_product ON product_movements(product_id, moved_at);
`

// InitSchema creates or upgrades the database schema.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - check for legacy tables carried over from the old tracker
		var oldTableCount int
		err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('departments', 'products', 'product_movements')").Scan(&oldTableCount)
		if err != nil {
			return err
		}

		if oldTableCount > 0 {
			// Old schema exists - run migrations to upgrade
			return RunMigrations()
		}

		// Completely fresh install - create modern schema directly.
		// Also create schema_version at max version to prevent migrations from running.
		_, err = db.Exec(SchemaSQL)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		// Mark all migrations as applied for fresh installs
		for _, migration := range migrations {
			_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
			if err != nil {
				return err
			}
		}
		return SeedDefaultDepartments(db)
	}

	// schema_version table exists - run any pending migrations
	if err := RunMigrations(); err != nil {
		return err
	}
	return SeedDefaultDepartments(db)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

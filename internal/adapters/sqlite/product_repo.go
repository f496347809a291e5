package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/shopfloor/internal/ports/secondary"
)

// ProductRepository implements secondary.ProductRepository with SQLite.
// Writes that pair a product row change with a ledger append (create,
// move, complete) run inside one transaction.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new SQLite product repository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productSelectCols = "p.id, p.name, p.client, p.target_date, p.department_id, COALESCE(d.name, ''), p.status, p.created_at"

// scanProduct scans a joined product row into a ProductRecord.
func scanProduct(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ProductRecord, error) {
	var (
		departmentID sql.NullInt64
		createdAt    time.Time
	)

	record := &secondary.ProductRecord{}
	err := scanner.Scan(
		&record.ID, &record.Name, &record.Client, &record.TargetDate,
		&departmentID, &record.Department, &record.Status, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if departmentID.Valid {
		record.DepartmentID = &departmentID.Int64
	}
	record.CreatedAt = createdAt

	return record, nil
}

// Create persists a new product and its creation movement event atomically.
func (r *ProductRepository) Create(ctx context.Context, product *secondary.ProductRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var departmentID sql.NullInt64
	if product.DepartmentID != nil {
		departmentID = sql.NullInt64{Int64: *product.DepartmentID, Valid: true}
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO products (name, client, target_date, department_id, status) VALUES (?, ?, ?, ?, ?)",
		product.Name, product.Client, product.TargetDate, departmentID, secondary.ProductStatusInProgress,
	)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to read created product id: %w", err)
	}

	// Creation entry opens the product's ledger
	if err := appendMovementTx(ctx, tx, id, departmentID, product.CreatedAt); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit product create: %w", err)
	}
	return id, nil
}

// GetByID retrieves a product by its ID with the department name resolved.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*secondary.ProductRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productSelectCols+" FROM products p LEFT JOIN departments d ON p.department_id = d.id WHERE p.id = ?",
		id,
	)

	record, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return record, nil
}

// List retrieves all products in identity order.
func (r *ProductRepository) List(ctx context.Context) ([]*secondary.ProductRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productSelectCols+" FROM products p LEFT JOIN departments d ON p.department_id = d.id ORDER BY p.id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ProductRecord
	for rows.Next() {
		record, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// MoveTo sets the product's current department and appends the movement
// event, both in one transaction.
func (r *ProductRepository) MoveTo(ctx context.Context, id, departmentID int64, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE products SET department_id = ? WHERE id = ?", departmentID, id,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to move product: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		tx.Rollback()
		return fmt.Errorf("product %d: %w", id, secondary.ErrNotFound)
	}

	if err := appendMovementTx(ctx, tx, id, sql.NullInt64{Int64: departmentID, Valid: true}, at); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product move: %w", err)
	}
	return nil
}

// MarkCompleted sets the product's status to completed and appends the
// NULL-department completion event, both in one transaction.
func (r *ProductRepository) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE products SET status = ? WHERE id = ?", secondary.ProductStatusCompleted, id,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to mark product completed: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		tx.Rollback()
		return fmt.Errorf("product %d: %w", id, secondary.ErrNotFound)
	}

	if err := appendMovementTx(ctx, tx, id, sql.NullInt64{}, at); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product completion: %w", err)
	}
	return nil
}

// Delete removes a product. No-op if absent. Movement history is kept.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ClientSummary aggregates product counts per client in one query.
func (r *ProductRepository) ClientSummary(ctx context.Context) ([]*secondary.ClientSummaryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT client,
			COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN status != ? THEN 1 ELSE 0 END) AS pipeline
		FROM products
		GROUP BY client
		ORDER BY client`,
		secondary.ProductStatusCompleted, secondary.ProductStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize clients: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ClientSummaryRecord
	for rows.Next() {
		record := &secondary.ClientSummaryRecord{}
		if err := rows.Scan(&record.Client, &record.Total, &record.Completed, &record.Pipeline); err != nil {
			return nil, fmt.Errorf("failed to scan client summary: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

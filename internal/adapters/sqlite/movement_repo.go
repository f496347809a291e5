package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/shopfloor/internal/ports/secondary"
)

// MovementRepository implements secondary.MovementRepository with SQLite.
// The ledger is append-only: nothing here updates or deletes rows.
type MovementRepository struct {
	db *sql.DB
}

// NewMovementRepository creates a new SQLite movement repository.
func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// execer covers both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// appendMovementTx writes one ledger row within the caller's transaction.
// Product create/move/complete share this with the standalone Append so
// every ledger write goes through the same statement.
func appendMovementTx(ctx context.Context, ex execer, productID int64, departmentID sql.NullInt64, at time.Time) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO product_movements (product_id, department_id, moved_at) VALUES (?, ?, ?)",
		productID, departmentID, at,
	)
	if err != nil {
		return fmt.Errorf("failed to append movement: %w", err)
	}
	return nil
}

// Append writes one movement event. A nil departmentID records the
// completion marker.
func (r *MovementRepository) Append(ctx context.Context, productID int64, departmentID *int64, at time.Time) error {
	var dept sql.NullInt64
	if departmentID != nil {
		dept = sql.NullInt64{Int64: *departmentID, Valid: true}
	}
	return appendMovementTx(ctx, r.db, productID, dept, at)
}

// HistoryFor retrieves all movement events for a product, oldest first.
// Ties on the timestamp fall back to insertion order.
func (r *MovementRepository) HistoryFor(ctx context.Context, productID int64) ([]*secondary.MovementRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.product_id, m.department_id, COALESCE(d.name, ''), m.moved_at
		FROM product_movements m
		LEFT JOIN departments d ON m.department_id = d.id
		WHERE m.product_id = ?
		ORDER BY m.moved_at, m.id`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load movement history: %w", err)
	}
	defer rows.Close()

	var records []*secondary.MovementRecord
	for rows.Next() {
		var (
			departmentID sql.NullInt64
			movedAt      time.Time
		)
		record := &secondary.MovementRecord{}
		if err := rows.Scan(&record.ID, &record.ProductID, &departmentID, &record.Department, &movedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		if departmentID.Valid {
			record.DepartmentID = &departmentID.Int64
		}
		record.MovedAt = movedAt
		records = append(records, record)
	}
	return records, rows.Err()
}

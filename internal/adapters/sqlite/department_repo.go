// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/shopfloor/internal/ports/secondary"
)

// DepartmentRepository implements secondary.DepartmentRepository with SQLite.
// Every reorder (insert with shift, delete with renumber) runs inside one
// transaction so positions always stay a contiguous 1..N range.
type DepartmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new SQLite department repository.
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

const departmentSelectCols = "id, name, position"

// scanDepartment scans a department row into a DepartmentRecord.
func scanDepartment(scanner interface {
	Scan(dest ...any) error
}) (*secondary.DepartmentRecord, error) {
	record := &secondary.DepartmentRecord{}
	if err := scanner.Scan(&record.ID, &record.Name, &record.Position); err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves all departments ordered by position.
func (r *DepartmentRepository) List(ctx context.Context) ([]*secondary.DepartmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+departmentSelectCols+" FROM departments ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var records []*secondary.DepartmentRecord
	for rows.Next() {
		record, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByID retrieves a department by its ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*secondary.DepartmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+departmentSelectCols+" FROM departments WHERE id = ?", id,
	)

	record, err := scanDepartment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("department %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return record, nil
}

// GetByName retrieves a department by its unique name.
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*secondary.DepartmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+departmentSelectCols+" FROM departments WHERE name = ?", name,
	)

	record, err := scanDepartment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("department %q: %w", name, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return record, nil
}

// InsertBefore inserts a department at the named department's position,
// shifting it and everything after it up by one. A blank or unmatched
// beforeName appends at the end. The shift and the insert commit together
// or not at all.
func (r *DepartmentRepository) InsertBefore(ctx context.Context, name, beforeName string) (*secondary.DepartmentRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	position := 0
	if beforeName != "" {
		err := tx.QueryRowContext(ctx,
			"SELECT position FROM departments WHERE name = ?", beforeName,
		).Scan(&position)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			tx.Rollback()
			return nil, fmt.Errorf("failed to resolve insert position: %w", err)
		}
	}

	if position == 0 {
		// Append at the end (position 1 when the registry is empty)
		err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), 0) + 1 FROM departments",
		).Scan(&position)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to compute append position: %w", err)
		}
	} else {
		_, err := tx.ExecContext(ctx,
			"UPDATE departments SET position = position + 1 WHERE position >= ?", position,
		)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to shift departments: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO departments (name, position) VALUES (?, ?)", name, position,
	)
	if err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("department %q: %w", name, secondary.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to insert department: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to read inserted department id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit department insert: %w", err)
	}

	return &secondary.DepartmentRecord{ID: id, Name: name, Position: position}, nil
}

// Delete removes a department by name and decrements every higher position,
// closing the gap. Products referencing the department are left alone.
func (r *DepartmentRepository) Delete(ctx context.Context, name string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var position int
	err = tx.QueryRowContext(ctx,
		"SELECT position FROM departments WHERE name = ?", name,
	).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return false, nil
	}
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to find department: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM departments WHERE name = ?", name); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to delete department: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE departments SET position = position - 1 WHERE position > ?", position,
	); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("failed to renumber departments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit department delete: %w", err)
	}
	return true, nil
}

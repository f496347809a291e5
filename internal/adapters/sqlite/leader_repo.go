package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/shopfloor/internal/ports/secondary"
)

// LeaderRepository implements secondary.LeaderRepository with SQLite.
type LeaderRepository struct {
	db *sql.DB
}

// NewLeaderRepository creates a new SQLite team leader repository.
func NewLeaderRepository(db *sql.DB) *LeaderRepository {
	return &LeaderRepository{db: db}
}

const leaderSelectCols = "tl.id, tl.name, tl.department_id, COALESCE(d.name, '')"

// scanLeader scans a joined leader row into a LeaderRecord.
func scanLeader(scanner interface {
	Scan(dest ...any) error
}) (*secondary.LeaderRecord, error) {
	var departmentID sql.NullInt64

	record := &secondary.LeaderRecord{}
	if err := scanner.Scan(&record.ID, &record.Name, &departmentID, &record.Department); err != nil {
		return nil, err
	}
	if departmentID.Valid {
		record.DepartmentID = &departmentID.Int64
	}
	return record, nil
}

// Create persists a new team leader assigned to a department.
func (r *LeaderRepository) Create(ctx context.Context, name string, departmentID int64) (*secondary.LeaderRecord, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO team_leaders (name, department_id) VALUES (?, ?)",
		name, departmentID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("leader %q: %w", name, secondary.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to create leader: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read created leader id: %w", err)
	}

	return &secondary.LeaderRecord{ID: id, Name: name, DepartmentID: &departmentID}, nil
}

// List retrieves all leaders in identity order with department names resolved.
func (r *LeaderRepository) List(ctx context.Context) ([]*secondary.LeaderRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+leaderSelectCols+" FROM team_leaders tl LEFT JOIN departments d ON tl.department_id = d.id ORDER BY tl.id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}
	defer rows.Close()

	var records []*secondary.LeaderRecord
	for rows.Next() {
		record, err := scanLeader(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leader: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByName retrieves a leader by name.
func (r *LeaderRepository) GetByName(ctx context.Context, name string) (*secondary.LeaderRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+leaderSelectCols+" FROM team_leaders tl LEFT JOIN departments d ON tl.department_id = d.id WHERE tl.name = ?",
		name,
	)

	record, err := scanLeader(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("leader %q: %w", name, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leader: %w", err)
	}
	return record, nil
}

// GetByDepartment retrieves the leader assigned to a department.
func (r *LeaderRepository) GetByDepartment(ctx context.Context, departmentID int64) (*secondary.LeaderRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+leaderSelectCols+" FROM team_leaders tl LEFT JOIN departments d ON tl.department_id = d.id WHERE tl.department_id = ?",
		departmentID,
	)

	record, err := scanLeader(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("department %d leader: %w", departmentID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leader: %w", err)
	}
	return record, nil
}

// Delete removes a leader by name. Returns false if not found.
func (r *LeaderRepository) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM team_leaders WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete leader: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check leader delete: %w", err)
	}
	return affected > 0, nil
}

// DepartmentExists reports whether the department is present.
func (r *LeaderRepository) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM departments WHERE id = ?", departmentID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return true, nil
}

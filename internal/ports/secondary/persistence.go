// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"time"
)

// Storage-level error kinds. Adapters wrap these so services can map them
// to boundary errors with errors.Is.
var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates a unique constraint was violated.
	ErrDuplicateKey = errors.New("unique constraint violated")
)

// DepartmentRepository defines the secondary port for the department registry.
// The registry is the sole authority on sequence order: positions are dense,
// 1-based, and contiguous, and every reorder happens inside one transaction.
type DepartmentRepository interface {
	// List retrieves all departments ordered by position.
	List(ctx context.Context) ([]*DepartmentRecord, error)

	// GetByID retrieves a department by its ID.
	GetByID(ctx context.Context, id int64) (*DepartmentRecord, error)

	// GetByName retrieves a department by its unique name.
	GetByName(ctx context.Context, name string) (*DepartmentRecord, error)

	// InsertBefore inserts a department immediately before the named existing
	// department, shifting it and everything after it up by one. A blank or
	// unmatched beforeName appends at the end of the sequence.
	InsertBefore(ctx context.Context, name, beforeName string) (*DepartmentRecord, error)

	// Delete removes a department by name and closes the position gap.
	// Returns false if the name was not found. Products referencing the
	// department are left untouched.
	Delete(ctx context.Context, name string) (bool, error)
}

// DepartmentRecord represents a department as stored in persistence.
type DepartmentRecord struct {
	ID       int64
	Name     string
	Position int
}

// ProductRepository defines the secondary port for product persistence.
// Writes that pair a product update with a ledger entry (create, move,
// complete) are atomic: both rows land or neither does.
type ProductRepository interface {
	// Create persists a new product and its creation movement event.
	// Returns the assigned product ID.
	Create(ctx context.Context, product *ProductRecord) (int64, error)

	// GetByID retrieves a product by its ID.
	GetByID(ctx context.Context, id int64) (*ProductRecord, error)

	// List retrieves all products in identity order with resolved
	// department names.
	List(ctx context.Context) ([]*ProductRecord, error)

	// MoveTo sets the product's current department and appends the
	// corresponding movement event.
	MoveTo(ctx context.Context, id, departmentID int64, at time.Time) error

	// MarkCompleted sets the product's status to completed and appends a
	// NULL-department movement event.
	MarkCompleted(ctx context.Context, id int64, at time.Time) error

	// Delete removes a product. No-op if absent; ledger rows remain.
	Delete(ctx context.Context, id int64) error

	// ClientSummary aggregates product counts per client.
	ClientSummary(ctx context.Context) ([]*ClientSummaryRecord, error)
}

// Product status values as stored in persistence.
const (
	ProductStatusInProgress = "in_progress"
	ProductStatusCompleted  = "completed"
)

// ProductRecord represents a product as stored in persistence.
type ProductRecord struct {
	ID           int64
	Name         string
	Client       string
	TargetDate   string
	DepartmentID *int64 // nil only while the registry was empty at creation
	Department   string // resolved name, empty if unresolvable
	Status       string
	CreatedAt    time.Time
}

// ClientSummaryRecord is the per-client aggregate over products.
type ClientSummaryRecord struct {
	Client    string
	Total     int
	Completed int
	Pipeline  int
}

// MovementRepository defines the secondary port for the movement ledger.
// The ledger is append-only: rows are never updated or deleted.
type MovementRepository interface {
	// Append writes one movement event. A nil departmentID records the
	// completion marker.
	Append(ctx context.Context, productID int64, departmentID *int64, at time.Time) error

	// HistoryFor retrieves all movement events for a product ordered by
	// timestamp ascending, with department names resolved.
	HistoryFor(ctx context.Context, productID int64) ([]*MovementRecord, error)
}

// MovementRecord represents one movement event as stored in persistence.
type MovementRecord struct {
	ID           int64
	ProductID    int64
	DepartmentID *int64 // nil marks completion
	Department   string // resolved name, empty for completion events
	MovedAt      time.Time
}

// LeaderRepository defines the secondary port for team leader persistence.
type LeaderRepository interface {
	// Create persists a new team leader assigned to a department.
	Create(ctx context.Context, name string, departmentID int64) (*LeaderRecord, error)

	// List retrieves all leaders in identity order with resolved
	// department names.
	List(ctx context.Context) ([]*LeaderRecord, error)

	// GetByName retrieves a leader by name.
	GetByName(ctx context.Context, name string) (*LeaderRecord, error)

	// GetByDepartment retrieves the leader assigned to a department.
	GetByDepartment(ctx context.Context, departmentID int64) (*LeaderRecord, error)

	// Delete removes a leader by name. Returns false if not found.
	Delete(ctx context.Context, name string) (bool, error)

	// DepartmentExists reports whether the department is present.
	DepartmentExists(ctx context.Context, departmentID int64) (bool, error)
}

// LeaderRecord represents a team leader as stored in persistence.
type LeaderRecord struct {
	ID           int64
	Name         string
	DepartmentID *int64
	Department   string // resolved name, empty if unassigned
}

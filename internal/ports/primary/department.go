// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the CLI drives the
// tracking engine.
package primary

import "context"

// DepartmentService defines the primary port for the department registry.
type DepartmentService interface {
	// AddDepartment inserts a department into the sequence. If beforeName
	// names an existing department the new one takes its position and
	// everything from there shifts up by one; otherwise it is appended at
	// the end.
	AddDepartment(ctx context.Context, name, beforeName string) (*Department, error)

	// ListDepartments returns all departments in sequence order.
	ListDepartments(ctx context.Context) ([]*Department, error)

	// DeleteDepartment removes a department by name, renumbering the
	// remaining sequence. Returns false if the name was not found.
	DeleteDepartment(ctx context.Context, name string) (bool, error)
}

// Department represents a production stage in the ordered flow.
type Department struct {
	ID       int64
	Name     string
	Position int
}

package primary

import "context"

// LeaderService defines the primary port for team leader assignment.
// A leader is linked to at most one department and vice versa.
type LeaderService interface {
	// AddLeader creates a team leader assigned to a department.
	AddLeader(ctx context.Context, name string, departmentID int64) (*Leader, error)

	// ListLeaders returns all leaders with their assigned departments.
	ListLeaders(ctx context.Context) ([]*Leader, error)

	// DeleteLeader removes a leader by name. Returns false if not found.
	DeleteLeader(ctx context.Context, name string) (bool, error)
}

// Leader represents a team leader and their department assignment.
type Leader struct {
	ID         int64
	Name       string
	Department string // empty if unassigned
}

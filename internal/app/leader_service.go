package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

// LeaderServiceImpl implements the LeaderService interface.
type LeaderServiceImpl struct {
	leaderRepo secondary.LeaderRepository
}

// NewLeaderService creates a new LeaderService with injected dependencies.
func NewLeaderService(leaderRepo secondary.LeaderRepository) *LeaderServiceImpl {
	return &LeaderServiceImpl{leaderRepo: leaderRepo}
}

// AddLeader creates a team leader assigned to a department. A department
// holds at most one leader; the checks here give precise messages and the
// storage constraints back them up.
func (s *LeaderServiceImpl) AddLeader(ctx context.Context, name string, departmentID int64) (*primary.Leader, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: leader name must not be empty", primary.ErrValidation)
	}

	exists, err := s.leaderRepo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate department: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: department %d", primary.ErrNotFound, departmentID)
	}

	if _, err := s.leaderRepo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: leader %q already exists", primary.ErrDuplicateName, name)
	} else if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check leader name: %w", err)
	}

	if existing, err := s.leaderRepo.GetByDepartment(ctx, departmentID); err == nil {
		return nil, fmt.Errorf("%w: department already has leader %q", primary.ErrDuplicateName, existing.Name)
	} else if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check department leader: %w", err)
	}

	record, err := s.leaderRepo.Create(ctx, name, departmentID)
	if errors.Is(err, secondary.ErrDuplicateKey) {
		return nil, fmt.Errorf("%w: leader %q", primary.ErrDuplicateName, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create leader: %w", err)
	}

	return recordToLeader(record), nil
}

// ListLeaders returns all leaders with their assigned departments.
func (s *LeaderServiceImpl) ListLeaders(ctx context.Context) ([]*primary.Leader, error) {
	records, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}

	leaders := make([]*primary.Leader, len(records))
	for i, record := range records {
		leaders[i] = recordToLeader(record)
	}
	return leaders, nil
}

// DeleteLeader removes a leader by name. Returns false if not found.
func (s *LeaderServiceImpl) DeleteLeader(ctx context.Context, name string) (bool, error) {
	deleted, err := s.leaderRepo.Delete(ctx, strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("failed to delete leader: %w", err)
	}
	return deleted, nil
}

func recordToLeader(record *secondary.LeaderRecord) *primary.Leader {
	return &primary.Leader{
		ID:         record.ID,
		Name:       record.Name,
		Department: record.Department,
	}
}

// Package app contains the service implementations behind the primary ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/shopfloor/internal/core/registry"
	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

// DepartmentServiceImpl implements the DepartmentService interface.
type DepartmentServiceImpl struct {
	departmentRepo secondary.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService with injected dependencies.
func NewDepartmentService(departmentRepo secondary.DepartmentRepository) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// AddDepartment inserts a department into the sequence.
func (s *DepartmentServiceImpl) AddDepartment(ctx context.Context, name, beforeName string) (*primary.Department, error) {
	name = strings.TrimSpace(name)
	beforeName = strings.TrimSpace(beforeName)

	guard := registry.CanInsertDepartment(registry.InsertDepartmentContext{Name: name})
	if !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, guard.Reason)
	}

	record, err := s.departmentRepo.InsertBefore(ctx, name, beforeName)
	if errors.Is(err, secondary.ErrDuplicateKey) {
		return nil, fmt.Errorf("%w: department %q already exists", primary.ErrDuplicateName, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add department: %w", err)
	}

	return recordToDepartment(record), nil
}

// ListDepartments returns all departments in sequence order.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]*primary.Department, error) {
	records, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*primary.Department, len(records))
	for i, record := range records {
		departments[i] = recordToDepartment(record)
	}
	return departments, nil
}

// DeleteDepartment removes a department by name. Returns false if the name
// was not found. Products referencing the department keep their reference.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, name string) (bool, error) {
	deleted, err := s.departmentRepo.Delete(ctx, strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("failed to delete department: %w", err)
	}
	return deleted, nil
}

func recordToDepartment(record *secondary.DepartmentRecord) *primary.Department {
	return &primary.Department{
		ID:       record.ID,
		Name:     record.Name,
		Position: record.Position,
	}
}

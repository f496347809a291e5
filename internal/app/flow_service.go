package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/shopfloor/internal/core/flow"
	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

// FlowServiceImpl implements the FlowService interface. It reads the
// registry order, decides the step with the pure flow logic, and performs
// the paired product/ledger write through the repository, which commits it
// atomically.
type FlowServiceImpl struct {
	productRepo    secondary.ProductRepository
	departmentRepo secondary.DepartmentRepository
}

// NewFlowService creates a new FlowService with injected dependencies.
func NewFlowService(
	productRepo secondary.ProductRepository,
	departmentRepo secondary.DepartmentRepository,
) *FlowServiceImpl {
	return &FlowServiceImpl{
		productRepo:    productRepo,
		departmentRepo: departmentRepo,
	}
}

// AdvanceProduct moves a product one stage forward.
func (s *FlowServiceImpl) AdvanceProduct(ctx context.Context, productID int64) (*primary.AdvanceResult, error) {
	record, err := s.productRepo.GetByID(ctx, productID)
	if errors.Is(err, secondary.ErrNotFound) {
		return &primary.AdvanceResult{Outcome: primary.OutcomeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}

	// Completed products never move again; repeated advances stay no-ops
	// and write no duplicate completion events.
	if record.Status == secondary.ProductStatusCompleted {
		return &primary.AdvanceResult{Outcome: primary.OutcomeAlreadyFinal}, nil
	}

	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve department order: %w", err)
	}

	order := make([]string, len(departments))
	byName := make(map[string]*secondary.DepartmentRecord, len(departments))
	for i, d := range departments {
		order[i] = d.Name
		byName[d.Name] = d
	}

	decision := flow.NextStage(flow.AdvanceContext{
		CurrentDepartment: record.Department,
		Order:             order,
	})

	switch decision.Outcome {
	case flow.OutcomeCompleted:
		if err := s.productRepo.MarkCompleted(ctx, productID, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to complete product: %w", err)
		}
		return &primary.AdvanceResult{Outcome: primary.OutcomeCompleted}, nil

	case flow.OutcomeMoved:
		next := byName[decision.Next]
		if err := s.productRepo.MoveTo(ctx, productID, next.ID, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to move product: %w", err)
		}
		return &primary.AdvanceResult{Outcome: primary.OutcomeMoved, Department: next.Name}, nil

	default:
		// The product's department vanished from the registry (or the
		// product never had one). Manual reassignment is required; no
		// write happens and the flow never skips ahead.
		return nil, fmt.Errorf(
			"%w: product %d is in %q which is not part of the current flow",
			primary.ErrInconsistentState, productID, record.Department,
		)
	}
}

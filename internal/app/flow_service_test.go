package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

// newFlowFixture builds a four-stage flow with one in-progress product
// sitting at Design.
func newFlowFixture() (*FlowServiceImpl, *mockProductRepository) {
	departmentRepo := newMockDepartmentRepository("Design", "Fabrication", "Panel Assembly", "Dispatch")
	productRepo := newMockProductRepository()
	productRepo.departmentNames = map[int64]string{1: "Design", 2: "Fabrication", 3: "Panel Assembly", 4: "Dispatch"}

	designID := int64(1)
	productRepo.nextID = 1
	productRepo.products[1] = &secondary.ProductRecord{
		ID:           1,
		Name:         "Switchboard",
		Client:       "Acme",
		DepartmentID: &designID,
		Status:       secondary.ProductStatusInProgress,
	}

	return NewFlowService(productRepo, departmentRepo), productRepo
}

func TestAdvanceProductMovesOneStage(t *testing.T) {
	service, _ := newFlowFixture()

	result, err := service.AdvanceProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("AdvanceProduct failed: %v", err)
	}
	if result.Outcome != primary.OutcomeMoved {
		t.Fatalf("outcome = %q, want %q", result.Outcome, primary.OutcomeMoved)
	}
	if result.Department != "Fabrication" {
		t.Errorf("department = %q, want Fabrication", result.Department)
	}
}

func TestAdvanceProductFullWalk(t *testing.T) {
	service, productRepo := newFlowFixture()
	ctx := context.Background()

	// Three forward moves take the product from Design to the terminal stage
	wantMoves := []string{"Fabrication", "Panel Assembly", "Dispatch"}
	for _, want := range wantMoves {
		result, err := service.AdvanceProduct(ctx, 1)
		if err != nil {
			t.Fatalf("AdvanceProduct failed: %v", err)
		}
		if result.Outcome != primary.OutcomeMoved || result.Department != want {
			t.Fatalf("got %+v, want move to %q", result, want)
		}
	}

	// Advancing at the terminal stage completes the product
	result, err := service.AdvanceProduct(ctx, 1)
	if err != nil {
		t.Fatalf("AdvanceProduct failed: %v", err)
	}
	if result.Outcome != primary.OutcomeCompleted {
		t.Fatalf("outcome = %q, want %q", result.Outcome, primary.OutcomeCompleted)
	}
	if productRepo.products[1].Status != secondary.ProductStatusCompleted {
		t.Errorf("product status = %q, want completed", productRepo.products[1].Status)
	}

	// Further advances are no-ops and must not complete twice
	result, err = service.AdvanceProduct(ctx, 1)
	if err != nil {
		t.Fatalf("AdvanceProduct failed: %v", err)
	}
	if result.Outcome != primary.OutcomeAlreadyFinal {
		t.Errorf("outcome = %q, want %q", result.Outcome, primary.OutcomeAlreadyFinal)
	}
}

func TestAdvanceProductNotFound(t *testing.T) {
	service, _ := newFlowFixture()

	result, err := service.AdvanceProduct(context.Background(), 99)
	if err != nil {
		t.Fatalf("AdvanceProduct failed: %v", err)
	}
	if result.Outcome != primary.OutcomeNotFound {
		t.Errorf("outcome = %q, want %q", result.Outcome, primary.OutcomeNotFound)
	}
}

func TestAdvanceProductStuckAfterDepartmentDeletion(t *testing.T) {
	departmentRepo := newMockDepartmentRepository("Design", "Dispatch")
	productRepo := newMockProductRepository()
	// Product references a department that is gone from the registry
	goneID := int64(7)
	productRepo.nextID = 1
	productRepo.products[1] = &secondary.ProductRecord{
		ID:           1,
		Name:         "Switchboard",
		Client:       "Acme",
		DepartmentID: &goneID,
		Status:       secondary.ProductStatusInProgress,
	}
	service := NewFlowService(productRepo, departmentRepo)

	_, err := service.AdvanceProduct(context.Background(), 1)
	if !errors.Is(err, primary.ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}

	// The stuck product must not have been written to
	if productRepo.products[1].Status != secondary.ProductStatusInProgress {
		t.Errorf("stuck product status changed to %q", productRepo.products[1].Status)
	}
	if *productRepo.products[1].DepartmentID != goneID {
		t.Errorf("stuck product department changed to %d", *productRepo.products[1].DepartmentID)
	}
}

func TestAdvanceProductSingleStageRegistry(t *testing.T) {
	departmentRepo := newMockDepartmentRepository("Dispatch")
	productRepo := newMockProductRepository()
	productRepo.departmentNames = map[int64]string{1: "Dispatch"}
	dispatchID := int64(1)
	productRepo.nextID = 1
	productRepo.products[1] = &secondary.ProductRecord{
		ID:           1,
		Name:         "Switchboard",
		Client:       "Acme",
		DepartmentID: &dispatchID,
		Status:       secondary.ProductStatusInProgress,
	}
	service := NewFlowService(productRepo, departmentRepo)

	result, err := service.AdvanceProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("AdvanceProduct failed: %v", err)
	}
	if result.Outcome != primary.OutcomeCompleted {
		t.Errorf("outcome = %q, want %q", result.Outcome, primary.OutcomeCompleted)
	}
}

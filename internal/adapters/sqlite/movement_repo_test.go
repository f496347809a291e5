package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/shopfloor/internal/adapters/sqlite"
	"github.com/example/shopfloor/internal/ports/secondary"
)

func TestAppendAndHistoryOrdering(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewMovementRepository(db)
	clock := testClock()

	designID := ids["Design"]
	fabID := ids["Fabrication"]
	productID := seedProduct(t, db, "Switchboard", "Acme", secondary.ProductStatusInProgress, &designID)

	// Creation, one move, then the completion marker
	if err := repo.Append(context.Background(), productID, &designID, clock()); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := repo.Append(context.Background(), productID, &fabID, clock()); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := repo.Append(context.Background(), productID, nil, clock()); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	history, err := repo.HistoryFor(context.Background(), productID)
	if err != nil {
		t.Fatalf("HistoryFor failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}

	if history[0].Department != "Design" {
		t.Errorf("first event department = %q, want Design", history[0].Department)
	}
	if history[1].Department != "Fabrication" {
		t.Errorf("second event department = %q, want Fabrication", history[1].Department)
	}
	if history[2].DepartmentID != nil || history[2].Department != "" {
		t.Errorf("third event should be the completion marker, got %+v", history[2])
	}

	for i := 1; i < len(history); i++ {
		if history[i].MovedAt.Before(history[i-1].MovedAt) {
			t.Errorf("history not in ascending timestamp order at index %d", i)
		}
	}
}

func TestHistoryForUnknownProductIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewMovementRepository(db)

	history, err := repo.HistoryFor(context.Background(), 42)
	if err != nil {
		t.Fatalf("HistoryFor failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0", len(history))
	}
}

func TestHistorySurvivesDepartmentDeletion(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	movementRepo := sqlite.NewMovementRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)
	clock := testClock()

	designID := ids["Design"]
	productID := seedProduct(t, db, "Switchboard", "Acme", secondary.ProductStatusInProgress, &designID)
	if err := movementRepo.Append(context.Background(), productID, &designID, clock()); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if _, err := departmentRepo.Delete(context.Background(), "Design"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// The ledger row is kept; only the name can no longer be resolved
	history, err := movementRepo.HistoryFor(context.Background(), productID)
	if err != nil {
		t.Fatalf("HistoryFor failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].DepartmentID == nil {
		t.Error("department id should survive the deletion")
	}
	if history[0].Department != "" {
		t.Errorf("department name = %q, want empty after deletion", history[0].Department)
	}
}

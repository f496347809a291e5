package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/shopfloor/internal/adapters/sqlite"
	"github.com/example/shopfloor/internal/ports/secondary"
)

func TestCreateAndListLeaders(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewLeaderRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Mei", ids["Design"]); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(ctx, "Tomas", ids["Dispatch"]); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	leaders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(leaders) != 2 {
		t.Fatalf("got %d leaders, want 2", len(leaders))
	}
	if leaders[0].Name != "Mei" || leaders[0].Department != "Design" {
		t.Errorf("first leader = %+v, want Mei in Design", leaders[0])
	}
}

func TestCreateLeaderDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewLeaderRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Mei", ids["Design"]); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := repo.Create(ctx, "Mei", ids["Dispatch"])
	if !errors.Is(err, secondary.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCreateLeaderDepartmentAlreadyLed(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewLeaderRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Mei", ids["Design"]); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := repo.Create(ctx, "Tomas", ids["Design"])
	if !errors.Is(err, secondary.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for second leader in department, got %v", err)
	}
}

func TestGetLeaderByNameAndDepartment(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewLeaderRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Mei", ids["Design"]); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byName, err := repo.GetByName(ctx, "Mei")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if byName.Department != "Design" {
		t.Errorf("department = %q, want Design", byName.Department)
	}

	byDept, err := repo.GetByDepartment(ctx, ids["Design"])
	if err != nil {
		t.Fatalf("GetByDepartment failed: %v", err)
	}
	if byDept.Name != "Mei" {
		t.Errorf("leader = %q, want Mei", byDept.Name)
	}

	if _, err := repo.GetByName(ctx, "Nobody"); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByDepartment(ctx, ids["Dispatch"]); !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unled department, got %v", err)
	}
}

func TestDeleteLeader(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewLeaderRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Mei", ids["Design"]); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := repo.Delete(ctx, "Mei")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}

	deleted, err = repo.Delete(ctx, "Mei")
	if err != nil {
		t.Fatalf("repeat Delete failed: %v", err)
	}
	if deleted {
		t.Error("expected repeat delete to report false")
	}
}

func TestDepartmentExists(t *testing.T) {
	db := setupTestDB(t)
	ids := seedFlow(t, db)
	repo := sqlite.NewLeaderRepository(db)
	ctx := context.Background()

	exists, err := repo.DepartmentExists(ctx, ids["Design"])
	if err != nil {
		t.Fatalf("DepartmentExists failed: %v", err)
	}
	if !exists {
		t.Error("expected Design to exist")
	}

	exists, err = repo.DepartmentExists(ctx, 999)
	if err != nil {
		t.Fatalf("DepartmentExists failed: %v", err)
	}
	if exists {
		t.Error("expected department 999 to be absent")
	}
}

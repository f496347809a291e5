package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

type mockLeaderRepository struct {
	leaders         map[int64]*secondary.LeaderRecord
	departmentNames map[int64]string
	nextID          int64
	createErr       error
}

func newMockLeaderRepository(departmentNames map[int64]string) *mockLeaderRepository {
	return &mockLeaderRepository{
		leaders:         make(map[int64]*secondary.LeaderRecord),
		departmentNames: departmentNames,
	}
}

func (m *mockLeaderRepository) Create(ctx context.Context, name string, departmentID int64) (*secondary.LeaderRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, leader := range m.leaders {
		if leader.Name == name {
			return nil, fmt.Errorf("leader %q: %w", name, secondary.ErrDuplicateKey)
		}
		if leader.DepartmentID != nil && *leader.DepartmentID == departmentID {
			return nil, fmt.Errorf("department %d: %w", departmentID, secondary.ErrDuplicateKey)
		}
	}
	m.nextID++
	record := &secondary.LeaderRecord{
		ID:           m.nextID,
		Name:         name,
		DepartmentID: &departmentID,
		Department:   m.departmentNames[departmentID],
	}
	m.leaders[record.ID] = record
	return record, nil
}

func (m *mockLeaderRepository) List(ctx context.Context) ([]*secondary.LeaderRecord, error) {
	var result []*secondary.LeaderRecord
	for id := int64(1); id <= m.nextID; id++ {
		if leader, ok := m.leaders[id]; ok {
			result = append(result, leader)
		}
	}
	return result, nil
}

func (m *mockLeaderRepository) GetByName(ctx context.Context, name string) (*secondary.LeaderRecord, error) {
	for _, leader := range m.leaders {
		if leader.Name == name {
			return leader, nil
		}
	}
	return nil, fmt.Errorf("leader %q: %w", name, secondary.ErrNotFound)
}

func (m *mockLeaderRepository) GetByDepartment(ctx context.Context, departmentID int64) (*secondary.LeaderRecord, error) {
	for _, leader := range m.leaders {
		if leader.DepartmentID != nil && *leader.DepartmentID == departmentID {
			return leader, nil
		}
	}
	return nil, fmt.Errorf("department %d: %w", departmentID, secondary.ErrNotFound)
}

func (m *mockLeaderRepository) Delete(ctx context.Context, name string) (bool, error) {
	for id, leader := range m.leaders {
		if leader.Name == name {
			delete(m.leaders, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLeaderRepository) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	_, ok := m.departmentNames[departmentID]
	return ok, nil
}

func TestAddLeader(t *testing.T) {
	repo := newMockLeaderRepository(map[int64]string{1: "Design", 2: "Fabrication"})
	service := NewLeaderService(repo)

	leader, err := service.AddLeader(context.Background(), "Priya", 1)
	if err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}
	if leader.Name != "Priya" || leader.Department != "Design" {
		t.Errorf("leader = %+v, want Priya leading Design", leader)
	}
}

func TestAddLeaderTrimsName(t *testing.T) {
	repo := newMockLeaderRepository(map[int64]string{1: "Design"})
	service := NewLeaderService(repo)

	leader, err := service.AddLeader(context.Background(), "  Priya  ", 1)
	if err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}
	if leader.Name != "Priya" {
		t.Errorf("name = %q, want trimmed", leader.Name)
	}
}

func TestAddLeaderEmptyName(t *testing.T) {
	service := NewLeaderService(newMockLeaderRepository(map[int64]string{1: "Design"}))

	_, err := service.AddLeader(context.Background(), "   ", 1)
	if !errors.Is(err, primary.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAddLeaderUnknownDepartment(t *testing.T) {
	service := NewLeaderService(newMockLeaderRepository(map[int64]string{1: "Design"}))

	_, err := service.AddLeader(context.Background(), "Priya", 42)
	if !errors.Is(err, primary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddLeaderDuplicateName(t *testing.T) {
	repo := newMockLeaderRepository(map[int64]string{1: "Design", 2: "Fabrication"})
	service := NewLeaderService(repo)

	if _, err := service.AddLeader(context.Background(), "Priya", 1); err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}
	_, err := service.AddLeader(context.Background(), "Priya", 2)
	if !errors.Is(err, primary.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestAddLeaderDepartmentAlreadyLed(t *testing.T) {
	repo := newMockLeaderRepository(map[int64]string{1: "Design"})
	service := NewLeaderService(repo)

	if _, err := service.AddLeader(context.Background(), "Priya", 1); err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}
	_, err := service.AddLeader(context.Background(), "Marco", 1)
	if !errors.Is(err, primary.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestListLeaders(t *testing.T) {
	repo := newMockLeaderRepository(map[int64]string{1: "Design", 2: "Fabrication"})
	service := NewLeaderService(repo)
	ctx := context.Background()

	if _, err := service.AddLeader(ctx, "Priya", 1); err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}
	if _, err := service.AddLeader(ctx, "Marco", 2); err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}

	leaders, err := service.ListLeaders(ctx)
	if err != nil {
		t.Fatalf("ListLeaders failed: %v", err)
	}
	if len(leaders) != 2 {
		t.Fatalf("expected 2 leaders, got %d", len(leaders))
	}
	if leaders[0].Name != "Priya" || leaders[1].Name != "Marco" {
		t.Errorf("leaders out of order: %q, %q", leaders[0].Name, leaders[1].Name)
	}
}

func TestDeleteLeader(t *testing.T) {
	repo := newMockLeaderRepository(map[int64]string{1: "Design"})
	service := NewLeaderService(repo)
	ctx := context.Background()

	if _, err := service.AddLeader(ctx, "Priya", 1); err != nil {
		t.Fatalf("AddLeader failed: %v", err)
	}

	deleted, err := service.DeleteLeader(ctx, "Priya")
	if err != nil {
		t.Fatalf("DeleteLeader failed: %v", err)
	}
	if !deleted {
		t.Error("expected leader to be deleted")
	}

	deleted, err = service.DeleteLeader(ctx, "Priya")
	if err != nil {
		t.Fatalf("DeleteLeader failed: %v", err)
	}
	if deleted {
		t.Error("expected false for missing leader")
	}
}

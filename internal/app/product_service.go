package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/shopfloor/internal/core/product"
	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

// ProductServiceImpl implements the ProductService interface.
type ProductServiceImpl struct {
	productRepo    secondary.ProductRepository
	departmentRepo secondary.DepartmentRepository
	movementRepo   secondary.MovementRepository
}

// NewProductService creates a new ProductService with injected dependencies.
func NewProductService(
	productRepo secondary.ProductRepository,
	departmentRepo secondary.DepartmentRepository,
	movementRepo secondary.MovementRepository,
) *ProductServiceImpl {
	return &ProductServiceImpl{
		productRepo:    productRepo,
		departmentRepo: departmentRepo,
		movementRepo:   movementRepo,
	}
}

// CreateProduct creates a product at the first department of the current
// sequence. The initial department is resolved once, here; later registry
// edits do not re-home existing products.
func (s *ProductServiceImpl) CreateProduct(ctx context.Context, req primary.CreateProductRequest) (*primary.Product, error) {
	name := strings.TrimSpace(req.Name)
	client := strings.TrimSpace(req.Client)

	guard := product.CanCreateProduct(product.CreateProductContext{Name: name, Client: client})
	if !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, guard.Reason)
	}

	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve initial department: %w", err)
	}

	record := &secondary.ProductRecord{
		Name:       name,
		Client:     client,
		TargetDate: strings.TrimSpace(req.TargetDate),
		CreatedAt:  time.Now(),
	}
	initialDepartment := ""
	if len(departments) > 0 {
		record.DepartmentID = &departments[0].ID
		initialDepartment = departments[0].Name
	}

	id, err := s.productRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &primary.Product{
		ID:         id,
		Name:       name,
		Client:     client,
		TargetDate: record.TargetDate,
		Department: initialDepartment,
		Status:     primary.StatusInProgress,
	}, nil
}

// ListProducts returns all products in identity order.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]*primary.Product, error) {
	records, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*primary.Product, len(records))
	for i, record := range records {
		products[i] = recordToProduct(record)
	}
	return products, nil
}

// DeleteProduct removes a product regardless of status or history. The
// movement ledger keeps its rows.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ProductHistory returns the product's movement history, oldest first.
// History remains queryable after the product itself is deleted.
func (s *ProductServiceImpl) ProductHistory(ctx context.Context, id int64) ([]*primary.MovementEntry, error) {
	records, err := s.movementRepo.HistoryFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product history: %w", err)
	}

	entries := make([]*primary.MovementEntry, len(records))
	for i, record := range records {
		entries[i] = &primary.MovementEntry{
			Department: record.Department,
			Completed:  record.DepartmentID == nil,
			Timestamp:  record.MovedAt,
		}
	}
	return entries, nil
}

func recordToProduct(record *secondary.ProductRecord) *primary.Product {
	status := primary.StatusInProgress
	if record.Status == secondary.ProductStatusCompleted {
		status = primary.StatusCompleted
	}
	return &primary.Product{
		ID:         record.ID,
		Name:       record.Name,
		Client:     record.Client,
		TargetDate: record.TargetDate,
		Department: record.Department,
		Status:     status,
	}
}

package primary

import (
	"context"
	"time"
)

// ProductService defines the primary port for product operations.
type ProductService interface {
	// CreateProduct creates a product starting at the first department in
	// the current sequence (resolved once, at call time) and records the
	// creation movement event.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)

	// ListProducts returns all products in identity order.
	ListProducts(ctx context.Context) ([]*Product, error)

	// DeleteProduct removes a product. No-op if absent; movement history
	// is kept.
	DeleteProduct(ctx context.Context, id int64) error

	// ProductHistory returns the product's full movement history in
	// timestamp order, starting with the creation event.
	ProductHistory(ctx context.Context, id int64) ([]*MovementEntry, error)
}

// CreateProductRequest contains parameters for creating a product.
type CreateProductRequest struct {
	Name       string
	Client     string
	TargetDate string
}

// Status is the lifecycle state of a product.
type Status string

const (
	// StatusInProgress marks a product still moving through departments.
	StatusInProgress Status = "InProgress"
	// StatusCompleted marks a product that advanced past the terminal stage.
	StatusCompleted Status = "Completed"
)

// Product represents a tracked product with its resolved current department.
type Product struct {
	ID         int64
	Name       string
	Client     string
	TargetDate string
	Department string // empty if unassigned or the department was deleted
	Status     Status
}

// MovementEntry is one step of a product's path through the flow.
// Completed entries carry no department: they mark arrival past the
// terminal stage.
type MovementEntry struct {
	Department string
	Completed  bool
	Timestamp  time.Time
}

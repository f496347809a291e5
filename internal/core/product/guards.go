// Package product contains the pure business logic for product operations.
// Guards are pure functions that evaluate preconditions without side effects.
package product

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateProductContext provides context for product creation guards.
type CreateProductContext struct {
	Name   string
	Client string
}

// CanCreateProduct evaluates whether a product can be created.
// Rules:
// - Product name must not be blank
// - Client name must not be blank
func CanCreateProduct(ctx CreateProductContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "product name must not be empty",
		}
	}

	if strings.TrimSpace(ctx.Client) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "client name must not be empty",
		}
	}

	return GuardResult{Allowed: true}
}

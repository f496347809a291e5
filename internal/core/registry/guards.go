// Package registry contains the pure business logic for the department
// sequence. Guards are pure functions that evaluate preconditions without
// side effects.
package registry

import (
	"fmt"
	"regexp"
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

// Department names are plain words: letters and spaces, nothing else.
var namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

// InsertDepartmentContext provides context for department insertion guards.
type InsertDepartmentContext struct {
	Name string
}

// CanInsertDepartment evaluates whether a department can be inserted.
// Rules:
// - Name must not be blank
// - Name must contain only letters and spaces
func CanInsertDepartment(ctx InsertDepartmentContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "department name must not be empty",
		}
	}

	if !namePattern.MatchString(ctx.Name) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("department name %q must contain only letters and spaces", ctx.Name),
		}
	}

	return GuardResult{Allowed: true}
}

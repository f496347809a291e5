package primary

import "errors"

// Boundary error kinds. Services wrap these with context via fmt.Errorf
// and %w; the CLI converts them to human-readable outcomes. Nothing is
// retried and no error propagates past a single operation.
var (
	// ErrValidation indicates an empty or malformed name or identifier.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateName indicates a uniqueness violation on a department
	// or team leader.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound indicates a referenced product, department, or leader
	// is absent.
	ErrNotFound = errors.New("not found")

	// ErrInconsistentState indicates a product's current department is no
	// longer present in the registry's live ordering. Only possible after
	// an out-of-band department deletion.
	ErrInconsistentState = errors.New("inconsistent state")
)

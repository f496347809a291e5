package primary

import "context"

// FlowService defines the primary port for moving products through the
// department sequence. Movement is forward-only and single-step.
type FlowService interface {
	// AdvanceProduct moves a product one stage forward. Arrival at the
	// terminal stage is the completion trigger: the product is marked
	// completed and a final ledger event is written. Advancing a product
	// whose department vanished from the registry fails with
	// ErrInconsistentState.
	AdvanceProduct(ctx context.Context, productID int64) (*AdvanceResult, error)
}

// AdvanceOutcome enumerates the possible results of advancing a product.
type AdvanceOutcome string

const (
	// OutcomeMoved means the product moved forward one department.
	OutcomeMoved AdvanceOutcome = "moved"
	// OutcomeCompleted means the product was at the terminal stage and is
	// now completed.
	OutcomeCompleted AdvanceOutcome = "completed"
	// OutcomeAlreadyFinal means the product is already completed; nothing
	// was written.
	OutcomeAlreadyFinal AdvanceOutcome = "already-final"
	// OutcomeNotFound means no product exists with the given ID.
	OutcomeNotFound AdvanceOutcome = "not-found"
)

// AdvanceResult describes what an advance did.
type AdvanceResult struct {
	Outcome    AdvanceOutcome
	Department string // destination department name when Outcome is OutcomeMoved
}

// Package flow contains the pure movement logic for advancing products
// through the department sequence. It decides what an advance should do;
// the service layer performs the writes.
package flow

// Outcome classifies what a single forward step should do.
type Outcome string

const (
	// OutcomeMoved means the product advances to the next department.
	OutcomeMoved Outcome = "moved"
	// OutcomeCompleted means the product sits at the terminal stage and
	// the step completes it. Arrival at the terminal stage IS the
	// completion trigger, not a separate move.
	OutcomeCompleted Outcome = "completed"
	// OutcomeStuck means the product's current department is not part of
	// the live ordering. The product needs manual reassignment; the step
	// must not write anything.
	OutcomeStuck Outcome = "stuck"
)

// AdvanceContext provides the inputs for one advance decision.
type AdvanceContext struct {
	// CurrentDepartment is the product's resolved department name. Empty
	// when the product was created against an empty registry or its
	// department was deleted out-of-band.
	CurrentDepartment string
	// Order is the registry's current ordered department name list.
	Order []string
}

// Result is the decision for one advance step.
type Result struct {
	Outcome Outcome
	Next    string // destination department name when Outcome is OutcomeMoved
}

// NextStage computes the single forward step for a product. Only forward,
// one-step movement exists: no jumps, no backward moves, no skipping.
func NextStage(ctx AdvanceContext) Result {
	idx := indexOf(ctx.Order, ctx.CurrentDepartment)
	if ctx.CurrentDepartment == "" || idx < 0 {
		return Result{Outcome: OutcomeStuck}
	}

	if idx == len(ctx.Order)-1 {
		return Result{Outcome: OutcomeCompleted}
	}

	return Result{Outcome: OutcomeMoved, Next: ctx.Order[idx+1]}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

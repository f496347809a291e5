package primary

import "context"

// SummaryService defines the primary port for derived reporting views.
// Summaries are computed on demand from the product store and carry no
// invariants of their own.
type SummaryService interface {
	// ClientSummary returns per-client product counts, ordered by client
	// name.
	ClientSummary(ctx context.Context) ([]*ClientSummary, error)
}

// ClientSummary aggregates one client's products.
type ClientSummary struct {
	Client    string
	Total     int
	Completed int // products past the terminal stage
	Pipeline  int // products still in the flow
}

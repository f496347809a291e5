package app

import (
	"context"
	"fmt"

	"github.com/example/shopfloor/internal/ports/primary"
	"github.com/example/shopfloor/internal/ports/secondary"
)

// SummaryServiceImpl implements the SummaryService interface.
// Summaries are derived on demand from the product store; nothing is
// cached or stored.
type SummaryServiceImpl struct {
	productRepo secondary.ProductRepository
}

// NewSummaryService creates a new SummaryService with injected dependencies.
func NewSummaryService(productRepo secondary.ProductRepository) *SummaryServiceImpl {
	return &SummaryServiceImpl{productRepo: productRepo}
}

// ClientSummary returns per-client product counts ordered by client name.
func (s *SummaryServiceImpl) ClientSummary(ctx context.Context) ([]*primary.ClientSummary, error) {
	records, err := s.productRepo.ClientSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build client summary: %w", err)
	}

	summaries := make([]*primary.ClientSummary, len(records))
	for i, record := range records {
		summaries[i] = &primary.ClientSummary{
			Client:    record.Client,
			Total:     record.Total,
			Completed: record.Completed,
			Pipeline:  record.Pipeline,
		}
	}
	return summaries, nil
}

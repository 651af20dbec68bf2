package port

import (
	"context"

	"robotreadme/internal/domain"
)

// LegislativeSource queries bill and law records.
type LegislativeSource interface {
	CurrentCongress(ctx context.Context) (int, error)

	// Bill returns nil without error when the record does not exist.
	Bill(ctx context.Context, congress int, billType, number string) (*domain.Bill, error)

	BillSummaries(ctx context.Context, congress int, billType, number string) ([]domain.BillSummary, error)

	SearchSummaries(ctx context.Context, query string, limit int) ([]domain.SummaryHit, error)

	Laws(ctx context.Context, congress, limit int) ([]domain.Law, error)
}

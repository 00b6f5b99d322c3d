package interfaces

import (
	"context"
	"plumbing_estimator/internal/domain/entities"
)

// IQuoteRepository abstracts document-store persistence for Quotes.
//
// Quotes are insert-only. ListRecent returns newest first; limit <= 0 means no
// limit. GetByID returns a zero Quote (empty ID) when nothing matches.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

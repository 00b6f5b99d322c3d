package interfaces

import (
	"context"
	"plumbing_estimator/internal/domain/entities"
)

// IQuoteRenderer renders a persisted quote as a printable document.
type IQuoteRenderer interface {
	Render(q entities.Quote) ([]byte, error)
}

// IQuoteArchive stores rendered documents in object storage and returns the
// object name they were stored under.
type IQuoteArchive interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

package interfaces

import (
	"context"
	"plumbing_estimator/internal/domain/entities"
)

// IServiceRepository abstracts document-store persistence for catalog Services.
//
// The catalog must be able to:
//   - insert a service and hand back the stored record
//   - list every service (store order)
//   - resolve a set of ids in one batched lookup, skipping unknown/malformed ids
//   - count records (startup seeding only runs on an empty catalog)

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	ListAll(ctx context.Context) ([]entities.Service, error)
	FindByIDs(ctx context.Context, ids []string) ([]entities.Service, error)
	Count(ctx context.Context) (int, error)
}

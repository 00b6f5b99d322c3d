package usecase

import (
	"context"
	"errors"
	"math"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrStoreUnavailable   = errors.New("document store not configured")
	ErrInvalidServiceName = errors.New("invalid service name")
	ErrInvalidServiceUnit = errors.New("invalid service unit: must be one of sqm, fixture, flat")
	ErrInvalidServiceRate = errors.New("invalid service rate: must be >= 0")
)

// ICatalogUseCase exposes the service catalog.
//
//   - CreateService: insert a validated Service, returning it with its new id
//   - ListServices: every stored Service
//   - FindServices: batched lookup; unknown or malformed ids are skipped
//   - SeedDefaults: insert the default catalog when the store is empty

type ICatalogUseCase interface {
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	FindServices(ctx context.Context, ids []string) ([]entities.Service, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type CatalogUseCase struct {
	repo interfaces.IServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	if !s.Unit.Valid() {
		return entities.Service{}, ErrInvalidServiceUnit
	}
	if s.Rate < 0 || math.IsNaN(s.Rate) || math.IsInf(s.Rate, 0) {
		return entities.Service{}, ErrInvalidServiceRate
	}
	if u.repo == nil {
		return entities.Service{}, ErrStoreUnavailable
	}

	s.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		logrus.WithFields(logrus.Fields{"service_id": s.ID, "err": err}).Error("[catalog][usecase] create failed")
		return entities.Service{}, err
	}
	logrus.WithFields(logrus.Fields{"service_id": created.ID, "unit": created.Unit}).Info("[catalog][usecase] service created")
	return created, nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	if u.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return u.repo.ListAll(ctx)
}

func (u *CatalogUseCase) FindServices(ctx context.Context, ids []string) ([]entities.Service, error) {
	keys := normalizeServiceIDs(ids)
	if len(keys) == 0 {
		return []entities.Service{}, nil
	}
	if u.repo == nil {
		return nil, ErrStoreUnavailable
	}

	found, err := u.repo.FindByIDs(ctx, keys)
	if err != nil {
		return nil, err
	}
	if dropped := len(keys) - len(found); dropped > 0 {
		logrus.WithFields(logrus.Fields{"requested": len(keys), "missing": dropped}).Debug("[catalog][usecase] unknown service ids skipped")
	}
	return found, nil
}

// SeedDefaults inserts DefaultServices when the catalog is empty and reports
// how many were inserted. A non-empty catalog is left untouched.
func (u *CatalogUseCase) SeedDefaults(ctx context.Context) (int, error) {
	if u.repo == nil {
		return 0, ErrStoreUnavailable
	}

	count, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logrus.WithField("count", count).Debug("[catalog][usecase] catalog not empty; seeding skipped")
		return 0, nil
	}

	inserted := 0
	for _, s := range DefaultServices() {
		s.ID = uuid.NewString()
		if _, err := u.repo.Create(ctx, s); err != nil {
			return inserted, err
		}
		inserted++
	}
	logrus.WithField("inserted", inserted).Info("[catalog][usecase] default catalog seeded")
	return inserted, nil
}

// DefaultServices is the catalog installed on first start.
func DefaultServices() []entities.Service {
	return []entities.Service{
		defaultService("Leak Repair", "Fix minor to major leaks", entities.UnitFlat, 120, "Repair"),
		defaultService("Pipe Installation", "Install new copper/PVC pipes", entities.UnitSqm, 35, "Installation"),
		defaultService("Fixture Installation", "Sinks, toilets, showers, faucets", entities.UnitFixture, 85, "Installation"),
		defaultService("Drain Cleaning", "Clear clogged drains", entities.UnitFlat, 95, "Maintenance"),
		defaultService("Water Heater Setup", "Install standard water heater", entities.UnitFlat, 650, "Installation"),
	}
}

func defaultService(name, description string, unit entities.ServiceUnit, rate float64, category string) entities.Service {
	return entities.Service{
		Name:        name,
		Description: &description,
		Unit:        unit,
		Rate:        rate,
		Category:    &category,
	}
}

// normalizeServiceIDs keeps well-formed UUIDs in canonical form, first
// occurrence wins.
func normalizeServiceIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		parsed, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		key := parsed.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

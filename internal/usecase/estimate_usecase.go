package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/estimator"
	"plumbing_estimator/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidAreaSqm        = errors.New("invalid area_sqm: must be >= 0")
	ErrInvalidFixtures       = errors.New("invalid fixtures: must be >= 0")
	ErrInvalidLocationFactor = errors.New("invalid location_factor: must be within [0.5, 2.0]")
	ErrInvalidPercentage     = errors.New("invalid overhead_pct/tax_pct: must be >= 0")
	ErrRendererUnavailable   = errors.New("quote renderer not configured")
)

// IEstimateUseCase exposes quote operations.
//
//   - Estimate: resolve selected services, price them, persist the Quote
//   - ListQuotes: most recent quotes, newest first (limit <= 0 means all)
//   - GetQuote / RenderQuotePDF: read back a persisted Quote

type IEstimateUseCase interface {
	Estimate(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error)
	ListQuotes(ctx context.Context, limit int) ([]entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	RenderQuotePDF(ctx context.Context, id string) ([]byte, error)
}

type EstimateUseCase struct {
	catalog  ICatalogUseCase
	repo     interfaces.IQuoteRepository
	renderer interfaces.IQuoteRenderer
	archive  interfaces.IQuoteArchive
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the quote flow. renderer and archive may be nil:
// without a renderer PDF export is unavailable, without an archive rendered
// documents are not stored.
func NewEstimateUseCase(catalog ICatalogUseCase, repo interfaces.IQuoteRepository, renderer interfaces.IQuoteRenderer, archive interfaces.IQuoteArchive) *EstimateUseCase {
	return &EstimateUseCase{
		catalog:  catalog,
		repo:     repo,
		renderer: renderer,
		archive:  archive,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateUseCase) Estimate(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error) {
	if err := validateQuoteRequest(req); err != nil {
		return entities.Quote{}, err
	}
	if u.repo == nil || u.catalog == nil {
		return entities.Quote{}, ErrStoreUnavailable
	}

	services, err := u.catalog.FindServices(ctx, req.ServiceIDs)
	if err != nil {
		logrus.WithField("err", err).Error("[estimate][usecase] resolving services failed")
		return entities.Quote{}, err
	}

	q := estimator.Compute(req, services)
	q.ID = uuid.NewString()
	q.CreatedAt = u.now()

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		logrus.WithFields(logrus.Fields{"quote_id": q.ID, "err": err}).Error("[estimate][usecase] persisting quote failed")
		return entities.Quote{}, err
	}
	logrus.WithFields(logrus.Fields{
		"quote_id": created.ID,
		"items":    len(created.Items),
		"total":    created.Total,
	}).Info("[estimate][usecase] quote created")
	return created, nil
}

func (u *EstimateUseCase) ListQuotes(ctx context.Context, limit int) ([]entities.Quote, error) {
	if u.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return u.repo.ListRecent(ctx, limit)
}

func (u *EstimateUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if u.repo == nil {
		return entities.Quote{}, ErrStoreUnavailable
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// RenderQuotePDF renders a stored quote. Archiving the document is
// best-effort: a failed upload is logged and the PDF is still returned.
func (u *EstimateUseCase) RenderQuotePDF(ctx context.Context, id string) ([]byte, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.renderer == nil {
		return nil, ErrRendererUnavailable
	}

	doc, err := u.renderer.Render(q)
	if err != nil {
		logrus.WithFields(logrus.Fields{"quote_id": q.ID, "err": err}).Error("[estimate][usecase] pdf render failed")
		return nil, err
	}

	if u.archive != nil {
		name := fmt.Sprintf("quotes/%s.pdf", q.ID)
		if stored, err := u.archive.Put(ctx, name, doc, "application/pdf"); err != nil {
			logrus.WithFields(logrus.Fields{"quote_id": q.ID, "err": err}).Warn("[estimate][usecase] pdf archive failed")
		} else {
			logrus.WithFields(logrus.Fields{"quote_id": q.ID, "object": stored}).Info("[estimate][usecase] pdf archived")
		}
	}
	return doc, nil
}

func validateQuoteRequest(req entities.QuoteRequest) error {
	if req.AreaSqm < 0 || !isFinite(req.AreaSqm) {
		return ErrInvalidAreaSqm
	}
	if req.Fixtures < 0 {
		return ErrInvalidFixtures
	}
	if !isFinite(req.LocationFactor) || req.LocationFactor < entities.MinLocationFactor || req.LocationFactor > entities.MaxLocationFactor {
		return ErrInvalidLocationFactor
	}
	if req.OverheadPct < 0 || req.TaxPct < 0 || !isFinite(req.OverheadPct) || !isFinite(req.TaxPct) {
		return ErrInvalidPercentage
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

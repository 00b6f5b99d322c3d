package request

import (
	"strings"

	"plumbing_estimator/internal/domain/entities"
)

// EstimateRequest is the POST /estimate payload. Optional numeric fields are
// pointers so an omitted field can be told apart from an explicit zero.
type EstimateRequest struct {
	ProjectName    *string  `json:"project_name" binding:"required"`
	AreaSqm        *float64 `json:"area_sqm" binding:"omitempty,gte=0"`
	Fixtures       *int     `json:"fixtures" binding:"omitempty,gte=0"`
	ServiceIDs     []string `json:"service_ids"`
	LocationFactor *float64 `json:"location_factor" binding:"omitempty,gte=0.5,lte=2"`
	OverheadPct    *float64 `json:"overhead_pct" binding:"omitempty,gte=0"`
	TaxPct         *float64 `json:"tax_pct" binding:"omitempty,gte=0"`
}

// ToEntity applies the documented defaults for omitted fields.
func (r EstimateRequest) ToEntity() entities.QuoteRequest {
	ids := make([]string, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		ids = append(ids, strings.TrimSpace(id))
	}

	return entities.QuoteRequest{
		ProjectName:    deref(r.ProjectName, ""),
		AreaSqm:        deref(r.AreaSqm, 0),
		Fixtures:       deref(r.Fixtures, 0),
		ServiceIDs:     ids,
		LocationFactor: deref(r.LocationFactor, entities.DefaultLocationFactor),
		OverheadPct:    deref(r.OverheadPct, entities.DefaultOverheadPct),
		TaxPct:         deref(r.TaxPct, entities.DefaultTaxPct),
	}
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

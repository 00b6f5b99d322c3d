package entities

import "time"

const (
	DefaultLocationFactor = 1.0
	DefaultOverheadPct    = 0.1
	DefaultTaxPct         = 0.08

	MinLocationFactor = 0.5
	MaxLocationFactor = 2.0
)

// QuoteRequest is the transient input of an estimate.
//
// Defaults (applied at the HTTP boundary when a field is omitted):
//   - AreaSqm, Fixtures: 0
//   - LocationFactor: 1.0
//   - OverheadPct: 0.1, TaxPct: 0.08
type QuoteRequest struct {
	ProjectName    string
	AreaSqm        float64
	Fixtures       int
	ServiceIDs     []string
	LocationFactor float64
	OverheadPct    float64
	TaxPct         float64
}

// QuoteItem is one priced line of a quote. It only exists as part of a Quote.
type QuoteItem struct {
	ServiceID   string      `json:"service_id"`
	ServiceName string      `json:"service_name"`
	Unit        ServiceUnit `json:"unit"`
	Quantity    float64     `json:"quantity"`
	Rate        float64     `json:"rate"`
	Cost        float64     `json:"cost"`
}

// Quote is the persisted result of an estimate. It is written once and never
// updated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (kind-created_at-index): kind + created_at, used to list the most
//     recent quotes
//
// Monetary representation:
//   - Subtotal, Overhead, Tax and Total are rounded to cents independently;
//     Total is computed from the rounded parts.
type Quote struct {
	ID                 string      `json:"id"`
	ProjectName        string      `json:"project_name"`
	AreaSqm            float64     `json:"area_sqm"`
	Fixtures           int         `json:"fixtures"`
	SelectedServiceIDs []string    `json:"selected_service_ids"`
	LocationFactor     float64     `json:"location_factor"`
	Items              []QuoteItem `json:"items"`
	Subtotal           float64     `json:"subtotal"`
	Overhead           float64     `json:"overhead"`
	Tax                float64     `json:"tax"`
	Total              float64     `json:"total"`
	CreatedAt          time.Time   `json:"created_at"`
}

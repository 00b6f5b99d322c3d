package response

import (
	"plumbing_estimator/internal/domain/entities"
	"time"
)

type QuoteItemResponse struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Cost        float64 `json:"cost"`
}

// QuoteResponse is a persisted quote flattened with its id.
type QuoteResponse struct {
	ID                 string              `json:"id"`
	ProjectName        string              `json:"project_name"`
	AreaSqm            float64             `json:"area_sqm"`
	Fixtures           int                 `json:"fixtures"`
	SelectedServiceIDs []string            `json:"selected_service_ids"`
	LocationFactor     float64             `json:"location_factor"`
	Items              []QuoteItemResponse `json:"items"`
	Subtotal           float64             `json:"subtotal"`
	Overhead           float64             `json:"overhead"`
	Tax                float64             `json:"tax"`
	Total              float64             `json:"total"`
	CreatedAt          time.Time           `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Unit:        string(it.Unit),
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Cost:        it.Cost,
		})
	}
	selected := q.SelectedServiceIDs
	if selected == nil {
		selected = []string{}
	}

	return QuoteResponse{
		ID:                 q.ID,
		ProjectName:        q.ProjectName,
		AreaSqm:            q.AreaSqm,
		Fixtures:           q.Fixtures,
		SelectedServiceIDs: selected,
		LocationFactor:     q.LocationFactor,
		Items:              items,
		Subtotal:           q.Subtotal,
		Overhead:           q.Overhead,
		Tax:                q.Tax,
		Total:              q.Total,
		CreatedAt:          q.CreatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

package response

import "plumbing_estimator/internal/domain/entities"

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Category    *string `json:"category,omitempty"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Unit:        string(s.Unit),
		Rate:        s.Rate,
		Category:    s.Category,
	}
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}

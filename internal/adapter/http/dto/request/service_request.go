package request

import (
	"strings"

	"plumbing_estimator/internal/domain/entities"
)

type ServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Unit        string   `json:"unit" binding:"required,oneof=sqm fixture flat"`
	Rate        *float64 `json:"rate" binding:"required,gte=0"`
	Category    *string  `json:"category"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Unit:        entities.ServiceUnit(r.Unit),
		Rate:        deref(r.Rate, 0),
		Category:    r.Category,
	}
}

package entities

// ServiceUnit is the pricing basis of a catalog service.
type ServiceUnit string

const (
	UnitSqm     ServiceUnit = "sqm"
	UnitFixture ServiceUnit = "fixture"
	UnitFlat    ServiceUnit = "flat"
)

func (u ServiceUnit) Valid() bool {
	switch u {
	case UnitSqm, UnitFixture, UnitFlat:
		return true
	}
	return false
}

// Service is a priced catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id (UUID string)
//
// Records are immutable once created; the catalog offers no partial update.
type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Unit        ServiceUnit `json:"unit"`
	Rate        float64     `json:"rate"`
	Category    *string     `json:"category,omitempty"`
}

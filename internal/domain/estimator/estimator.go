// Package estimator turns a quote request and the catalog services it selected
// into an itemized, rounded Quote. It performs no I/O.
package estimator

import (
	"plumbing_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const centsPlaces = 2

// Quantity returns how many units of a service the request consumes.
// Unknown units are priced as a flat charge.
func Quantity(unit entities.ServiceUnit, req entities.QuoteRequest) float64 {
	switch unit {
	case entities.UnitSqm:
		return max(0, req.AreaSqm)
	case entities.UnitFixture:
		return float64(max(0, req.Fixtures))
	default:
		return 1
	}
}

// Compute prices every service against req and aggregates the totals.
//
// Items keep the order of services. The subtotal is the sum of the unrounded
// item products rounded once; overhead, tax and total are each derived from
// the already rounded figures before them, so total always equals the sum of
// the displayed parts.
//
// The returned Quote has no ID or CreatedAt; those are assigned on persist.
func Compute(req entities.QuoteRequest, services []entities.Service) entities.Quote {
	factor := decimal.NewFromFloat(req.LocationFactor)

	items := make([]entities.QuoteItem, 0, len(services))
	sum := decimal.Zero
	for _, s := range services {
		qty := Quantity(s.Unit, req)
		cost := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(s.Rate)).Mul(factor)
		sum = sum.Add(cost)

		items = append(items, entities.QuoteItem{
			ServiceID:   s.ID,
			ServiceName: serviceName(s),
			Unit:        s.Unit,
			Quantity:    qty,
			Rate:        s.Rate,
			Cost:        cost.Round(centsPlaces).InexactFloat64(),
		})
	}

	subtotal := sum.Round(centsPlaces)
	overhead := subtotal.Mul(decimal.NewFromFloat(req.OverheadPct)).Round(centsPlaces)
	tax := subtotal.Add(overhead).Mul(decimal.NewFromFloat(req.TaxPct)).Round(centsPlaces)
	total := subtotal.Add(overhead).Add(tax).Round(centsPlaces)

	selected := make([]string, len(req.ServiceIDs))
	copy(selected, req.ServiceIDs)

	return entities.Quote{
		ProjectName:        req.ProjectName,
		AreaSqm:            req.AreaSqm,
		Fixtures:           req.Fixtures,
		SelectedServiceIDs: selected,
		LocationFactor:     req.LocationFactor,
		Items:              items,
		Subtotal:           subtotal.InexactFloat64(),
		Overhead:           overhead.InexactFloat64(),
		Tax:                tax.InexactFloat64(),
		Total:              total.InexactFloat64(),
	}
}

// Round2 rounds v to cents, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(centsPlaces).InexactFloat64()
}

func serviceName(s entities.Service) string {
	if s.Name == "" {
		return "Service"
	}
	return s.Name
}

package estimator

import (
	"testing"

	"plumbing_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		ProjectName:    "Bathroom remodel",
		LocationFactor: entities.DefaultLocationFactor,
		OverheadPct:    entities.DefaultOverheadPct,
		TaxPct:         entities.DefaultTaxPct,
	}
}

func TestQuantity(t *testing.T) {
	req := baseRequest()
	req.AreaSqm = 12.5
	req.Fixtures = 3

	assert.Equal(t, 12.5, Quantity(entities.UnitSqm, req))
	assert.Equal(t, 3.0, Quantity(entities.UnitFixture, req))
	assert.Equal(t, 1.0, Quantity(entities.UnitFlat, req))
	assert.Equal(t, 1.0, Quantity(entities.ServiceUnit("hour"), req))

	req.AreaSqm = -4
	req.Fixtures = -2
	assert.Equal(t, 0.0, Quantity(entities.UnitSqm, req))
	assert.Equal(t, 0.0, Quantity(entities.UnitFixture, req))
}

func TestCompute_EmptySelection(t *testing.T) {
	req := baseRequest()
	req.AreaSqm = 40
	req.Fixtures = 6

	q := Compute(req, nil)
	require.NotNil(t, q.Items)
	assert.Empty(t, q.Items)
	assert.Zero(t, q.Subtotal)
	assert.Zero(t, q.Overhead)
	assert.Zero(t, q.Tax)
	assert.Zero(t, q.Total)
}

func TestCompute_ReferenceExample(t *testing.T) {
	req := baseRequest()
	req.AreaSqm = 10
	req.Fixtures = 2
	req.ServiceIDs = []string{"svc-sqm", "svc-fixture"}

	services := []entities.Service{
		{ID: "svc-sqm", Name: "Pipe Installation", Unit: entities.UnitSqm, Rate: 35},
		{ID: "svc-fixture", Name: "Fixture Installation", Unit: entities.UnitFixture, Rate: 85},
	}

	q := Compute(req, services)
	require.Len(t, q.Items, 2)

	assert.Equal(t, "svc-sqm", q.Items[0].ServiceID)
	assert.Equal(t, 10.0, q.Items[0].Quantity)
	assert.Equal(t, 350.0, q.Items[0].Cost)

	assert.Equal(t, "svc-fixture", q.Items[1].ServiceID)
	assert.Equal(t, 2.0, q.Items[1].Quantity)
	assert.Equal(t, 170.0, q.Items[1].Cost)

	assert.Equal(t, 520.0, q.Subtotal)
	assert.Equal(t, 52.0, q.Overhead)
	assert.Equal(t, 45.76, q.Tax)
	assert.Equal(t, 617.76, q.Total)

	assert.Equal(t, "Bathroom remodel", q.ProjectName)
	assert.Equal(t, []string{"svc-sqm", "svc-fixture"}, q.SelectedServiceIDs)
	assert.Empty(t, q.ID)
}

func TestCompute_LocationFactorAndFlat(t *testing.T) {
	req := baseRequest()
	req.LocationFactor = 1.25

	services := []entities.Service{
		{ID: "leak", Name: "Leak Repair", Unit: entities.UnitFlat, Rate: 120},
		{ID: "heater", Name: "Water Heater Setup", Unit: entities.UnitFlat, Rate: 650},
	}

	q := Compute(req, services)
	require.Len(t, q.Items, 2)
	assert.Equal(t, 150.0, q.Items[0].Cost)
	assert.Equal(t, 812.5, q.Items[1].Cost)
	assert.Equal(t, 962.5, q.Subtotal)
	assert.Equal(t, 96.25, q.Overhead)
	// (962.50 + 96.25) * 0.08 = 84.70
	assert.Equal(t, 84.7, q.Tax)
	assert.Equal(t, 1143.45, q.Total)
}

func TestCompute_SubtotalSumsUnroundedProducts(t *testing.T) {
	req := baseRequest()
	req.AreaSqm = 1
	req.OverheadPct = 0
	req.TaxPct = 0

	// Each product is 0.005: displayed items round to 0.01 each, while the
	// subtotal is the rounded sum of the exact products (0.015 -> 0.02).
	services := []entities.Service{
		{ID: "a", Name: "A", Unit: entities.UnitSqm, Rate: 0.005},
		{ID: "b", Name: "B", Unit: entities.UnitSqm, Rate: 0.005},
		{ID: "c", Name: "C", Unit: entities.UnitSqm, Rate: 0.005},
	}

	q := Compute(req, services)
	for _, it := range q.Items {
		assert.Equal(t, 0.01, it.Cost)
	}
	assert.Equal(t, 0.02, q.Subtotal)
	assert.Equal(t, 0.02, q.Total)
}

func TestCompute_AggregateInvariants(t *testing.T) {
	req := baseRequest()
	req.AreaSqm = 17.3
	req.Fixtures = 7
	req.LocationFactor = 0.9
	req.OverheadPct = 0.137
	req.TaxPct = 0.0825

	services := []entities.Service{
		{ID: "1", Name: "Pipe Installation", Unit: entities.UnitSqm, Rate: 35},
		{ID: "2", Name: "Fixture Installation", Unit: entities.UnitFixture, Rate: 85},
		{ID: "3", Name: "Drain Cleaning", Unit: entities.UnitFlat, Rate: 95},
	}

	q := Compute(req, services)
	for i, s := range services {
		want := Round2(Quantity(s.Unit, req) * s.Rate * req.LocationFactor)
		assert.InDelta(t, want, q.Items[i].Cost, 1e-9, "item %d", i)
	}
	assert.InDelta(t, Round2(q.Subtotal*req.OverheadPct), q.Overhead, 1e-9)
	assert.InDelta(t, Round2((q.Subtotal+q.Overhead)*req.TaxPct), q.Tax, 1e-9)
	assert.InDelta(t, Round2(q.Subtotal+q.Overhead+q.Tax), q.Total, 1e-9)
}

func TestCompute_Deterministic(t *testing.T) {
	req := baseRequest()
	req.AreaSqm = 22.75
	req.Fixtures = 4
	services := []entities.Service{
		{ID: "1", Name: "Pipe Installation", Unit: entities.UnitSqm, Rate: 35},
		{ID: "2", Name: "Fixture Installation", Unit: entities.UnitFixture, Rate: 85},
	}

	first := Compute(req, services)
	second := Compute(req, services)
	assert.Equal(t, first, second)
}

func TestCompute_UnnamedServiceFallsBack(t *testing.T) {
	q := Compute(baseRequest(), []entities.Service{{ID: "x", Unit: entities.UnitFlat, Rate: 10}})
	require.Len(t, q.Items, 1)
	assert.Equal(t, "Service", q.Items[0].ServiceName)
}

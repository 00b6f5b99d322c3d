package request

import (
	"testing"

	"plumbing_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func ptr[T any](v T) *T { return &v }

func TestEstimateRequest_ToEntityDefaults(t *testing.T) {
	r := EstimateRequest{ProjectName: ptr("Bathroom")}
	q := r.ToEntity()

	if q.ProjectName != "Bathroom" || q.AreaSqm != 0 || q.Fixtures != 0 {
		t.Fatalf("unexpected base fields: %+v", q)
	}
	if q.LocationFactor != entities.DefaultLocationFactor || q.OverheadPct != entities.DefaultOverheadPct || q.TaxPct != entities.DefaultTaxPct {
		t.Fatalf("defaults not applied: %+v", q)
	}
	if q.ServiceIDs == nil || len(q.ServiceIDs) != 0 {
		t.Fatalf("expected empty service ids, got %#v", q.ServiceIDs)
	}
}

func TestEstimateRequest_ToEntityExplicitZeros(t *testing.T) {
	r := EstimateRequest{
		ProjectName:    ptr(""),
		AreaSqm:        ptr(12.5),
		Fixtures:       ptr(3),
		ServiceIDs:     []string{" a ", "b"},
		LocationFactor: ptr(1.5),
		OverheadPct:    ptr(0.0),
		TaxPct:         ptr(0.0),
	}
	q := r.ToEntity()

	if q.AreaSqm != 12.5 || q.Fixtures != 3 || q.LocationFactor != 1.5 {
		t.Fatalf("unexpected numbers: %+v", q)
	}
	if q.OverheadPct != 0 || q.TaxPct != 0 {
		t.Fatalf("explicit zeros must be kept: %+v", q)
	}
	if q.ServiceIDs[0] != "a" || q.ServiceIDs[1] != "b" {
		t.Fatalf("unexpected ids: %v", q.ServiceIDs)
	}
}

func TestEstimateRequest_Validation(t *testing.T) {
	cases := []struct {
		name  string
		req   EstimateRequest
		valid bool
	}{
		{"minimal", EstimateRequest{ProjectName: ptr("x")}, true},
		{"empty project name is allowed", EstimateRequest{ProjectName: ptr("")}, true},
		{"missing project name", EstimateRequest{}, false},
		{"negative area", EstimateRequest{ProjectName: ptr("x"), AreaSqm: ptr(-1.0)}, false},
		{"negative fixtures", EstimateRequest{ProjectName: ptr("x"), Fixtures: ptr(-1)}, false},
		{"factor below range", EstimateRequest{ProjectName: ptr("x"), LocationFactor: ptr(0.4)}, false},
		{"factor above range", EstimateRequest{ProjectName: ptr("x"), LocationFactor: ptr(2.5)}, false},
		{"factor at bounds", EstimateRequest{ProjectName: ptr("x"), LocationFactor: ptr(2.0)}, true},
		{"negative tax", EstimateRequest{ProjectName: ptr("x"), TaxPct: ptr(-0.01)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.req)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

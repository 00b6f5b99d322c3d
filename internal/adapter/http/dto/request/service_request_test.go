package request

import (
	"testing"

	"plumbing_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func TestServiceRequest_ToEntity(t *testing.T) {
	r := ServiceRequest{Name: " Leak Repair ", Unit: "flat", Rate: ptr(120.0), Category: ptr("Repair")}
	s := r.ToEntity()

	if s.Name != "Leak Repair" || s.Unit != entities.UnitFlat || s.Rate != 120 {
		t.Fatalf("unexpected service: %+v", s)
	}
	if s.Category == nil || *s.Category != "Repair" || s.Description != nil {
		t.Fatalf("unexpected optional fields: %+v", s)
	}
	if s.ID != "" {
		t.Fatalf("id must be assigned by the catalog, got %q", s.ID)
	}
}

func TestServiceRequest_Validation(t *testing.T) {
	cases := []struct {
		name  string
		req   ServiceRequest
		valid bool
	}{
		{"valid", ServiceRequest{Name: "x", Unit: "sqm", Rate: ptr(1.0)}, true},
		{"zero rate", ServiceRequest{Name: "x", Unit: "fixture", Rate: ptr(0.0)}, true},
		{"missing rate", ServiceRequest{Name: "x", Unit: "flat"}, false},
		{"negative rate", ServiceRequest{Name: "x", Unit: "flat", Rate: ptr(-5.0)}, false},
		{"unknown unit", ServiceRequest{Name: "x", Unit: "hour", Rate: ptr(1.0)}, false},
		{"missing name", ServiceRequest{Unit: "flat", Rate: ptr(1.0)}, false},
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

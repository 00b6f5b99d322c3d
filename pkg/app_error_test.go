package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		out := e.ToHTTPError()
		if out.Code != "INVALID_REQUEST" || out.Message != "Invalid request" || out.Detail != "" {
			t.Fatalf("unexpected http error: %+v", out)
		}
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected error string: %q", e.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		out := e.ToHTTPError()
		if out.Detail != "connection refused" {
			t.Fatalf("expected detail to carry cause, got %+v", out)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected AppError to unwrap to its cause")
		}
	})

	t.Run("with detail copies", func(t *testing.T) {
		base := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		withDetail := base.WithDetail(errors.New("rate must be >= 0"))
		if base.Err != nil {
			t.Fatalf("base error must not be mutated")
		}
		if withDetail.ToHTTPError().Detail != "rate must be >= 0" || withDetail.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("unexpected copy: %+v", withDetail)
		}
	})
}

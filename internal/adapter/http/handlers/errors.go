package handlers

import (
	"errors"
	"net/http"

	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServicePayload  = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidLimit           = pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be a non-negative integer", http.StatusBadRequest)
)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceName),
		errors.Is(err, usecase.ErrInvalidServiceUnit),
		errors.Is(err, usecase.ErrInvalidServiceRate):
		return pkg.NewDomainError("INVALID_SERVICE_INPUT", "Invalid service payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAreaSqm),
		errors.Is(err, usecase.ErrInvalidFixtures),
		errors.Is(err, usecase.ErrInvalidLocationFactor),
		errors.Is(err, usecase.ErrInvalidPercentage):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("INTERNAL_ERROR", "Database not connected", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrRendererUnavailable):
		return pkg.NewDomainError("INTERNAL_ERROR", "PDF export not available", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

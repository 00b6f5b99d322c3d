package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	request "plumbing_estimator/internal/adapter/http/dto/request"
	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultQuotesLimit = 20

// QuoteObserver receives the total of every quote created over HTTP.
type QuoteObserver interface {
	ObserveQuote(total float64)
}

// EstimateHandler handles estimate creation and quote history.
type EstimateHandler struct {
	usecase  usecase.IEstimateUseCase
	observer QuoteObserver
}

// NewEstimateHandler builds the handler. observer may be nil.
func NewEstimateHandler(uc usecase.IEstimateUseCase, observer QuoteObserver) *EstimateHandler {
	return &EstimateHandler{usecase: uc, observer: observer}
}

// CreateEstimate prices the selected services and stores the quote
// @Summary Create estimate
// @Tags Estimates
// @Accept json
// @Produce json
// @Param request body request.EstimateRequest true "Estimate input"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /estimate [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload.WithDetail(err))
		return
	}

	quote, err := h.usecase.Estimate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	if h.observer != nil {
		h.observer.ObserveQuote(quote.Total)
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes returns the most recent quotes, newest first
// @Summary List quotes
// @Tags Estimates
// @Produce json
// @Param limit query int false "Maximum number of quotes (default 20, 0 = all, negative rejected)"
// @Success 200 {array} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /quotes [get]
func (h *EstimateHandler) ListQuotes(c *gin.Context) {
	limit := defaultQuotesLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			writeError(c, errInvalidLimit.WithDetail(err))
			return
		}
		if n < 0 || n > math.MaxInt32 {
			writeError(c, errInvalidLimit.WithDetail(fmt.Errorf("limit %d out of range [0, %d]", n, math.MaxInt32)))
			return
		}
		limit = n
	}

	quotes, err := h.usecase.ListQuotes(c.Request.Context(), limit)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote returns a single stored quote
// @Summary Get quote
// @Tags Estimates
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /quotes/{id} [get]
func (h *EstimateHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuotePDF renders a stored quote as a PDF document
// @Summary Download quote PDF
// @Tags Estimates
// @Produce application/pdf
// @Param id path string true "Quote ID"
// @Success 200 {file} file
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /quotes/{id}/pdf [get]
func (h *EstimateHandler) GetQuotePDF(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.usecase.RenderQuotePDF(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="quote-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", doc)
}

package handlers

import (
	"net/http"

	request "plumbing_estimator/internal/adapter/http/dto/request"
	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the service catalog.
type ServiceHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewServiceHandler(uc usecase.ICatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// ListServices returns every catalog service
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {array} response.ServiceResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// CreateService adds a service to the catalog
// @Summary Create service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request.ServiceRequest true "Service"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidServicePayload.WithDetail(err))
		return
	}

	created, err := h.usecase.CreateService(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: created.ID})
}

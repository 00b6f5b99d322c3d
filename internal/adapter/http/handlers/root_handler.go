package handlers

import (
	"net/http"

	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RootHandler struct {
	diagnostics usecase.IDiagnosticsUseCase
}

func NewRootHandler(uc usecase.IDiagnosticsUseCase) *RootHandler {
	return &RootHandler{diagnostics: uc}
}

// Root is a liveness message
// @Summary API status
// @Tags System
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router / [get]
func (h *RootHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Plumbing API running"})
}

// StoreDiagnostics reports whether the document store is reachable. It always
// answers 200; problems are described in the body.
// @Summary Store diagnostics
// @Tags System
// @Produce json
// @Success 200 {object} usecase.StoreStatus
// @Router /test [get]
func (h *RootHandler) StoreDiagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnostics.StoreStatus(c.Request.Context()))
}

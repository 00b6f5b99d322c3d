package routes

import (
	"plumbing_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathEstimate = "/estimate"
	PathQuotes   = "/quotes"
)

func addSystemRoutes(router *gin.Engine, rootHandler *handlers.RootHandler) {
	router.GET("/", rootHandler.Root)
	router.GET("/test", rootHandler.StoreDiagnostics)
}

func addCatalogRoutes(router *gin.Engine, serviceHandler *handlers.ServiceHandler) {
	services := router.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
	}
}

func addEstimateRoutes(router *gin.Engine, estimateHandler *handlers.EstimateHandler) {
	router.POST(PathEstimate, estimateHandler.CreateEstimate)

	quotes := router.Group(PathQuotes)
	{
		quotes.GET("", estimateHandler.ListQuotes)
		quotes.GET("/:id", estimateHandler.GetQuote)
		quotes.GET("/:id/pdf", estimateHandler.GetQuotePDF)
	}
}

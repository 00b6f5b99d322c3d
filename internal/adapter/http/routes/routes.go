package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "plumbing_estimator/docs" // generated by swag init
	"plumbing_estimator/internal/adapter/http/handlers"
	"plumbing_estimator/internal/adapter/persistence/repository"
	"plumbing_estimator/internal/infrastructure/config"
	"plumbing_estimator/internal/infrastructure/database"
	"plumbing_estimator/internal/infrastructure/logger"
	"plumbing_estimator/internal/infrastructure/metrics"
	"plumbing_estimator/internal/infrastructure/pdf"
	"plumbing_estimator/internal/infrastructure/storage"
	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	startupTimeout = 15 * time.Second
	pdfCompanyName = "Plumbing Estimator"
)

// Dependencies are the use cases served over HTTP.
type Dependencies struct {
	Catalog     usecase.ICatalogUseCase
	Estimates   usecase.IEstimateUseCase
	Diagnostics usecase.IDiagnosticsUseCase
	Metrics     *metrics.Metrics
}

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	deps := buildDependencies(cfg)
	router := NewRouter(cfg, deps)

	addr := ":" + strconv.Itoa(cfg.Port)
	logrus.WithField("addr", addr).Info("[http] listening")
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewRouter builds the engine with middlewares and every route mounted.
func NewRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, deps.Metrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	var observer handlers.QuoteObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}

	addSystemRoutes(router, handlers.NewRootHandler(deps.Diagnostics))
	addCatalogRoutes(router, handlers.NewServiceHandler(deps.Catalog))
	addEstimateRoutes(router, handlers.NewEstimateHandler(deps.Estimates, observer))
	return router
}

func buildDependencies(cfg config.Config) Dependencies {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var (
		serviceRepo interfaces.IServiceRepository
		quoteRepo   interfaces.IQuoteRepository
		inspector   interfaces.IStoreInspector
		archive     interfaces.IQuoteArchive
	)

	if ddb := connectStore(ctx, cfg); ddb != nil {
		serviceRepo = repository.NewServiceDynamoRepository(ddb, cfg.ServicesTable)
		quoteRepo = repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
		inspector = repository.NewTableInspector(ddb)
	}

	if cfg.MinIO.Enabled() {
		a, err := storage.NewMinIOArchive(ctx, cfg.MinIO)
		if err != nil {
			logrus.WithFields(logrus.Fields{"endpoint": cfg.MinIO.Endpoint, "err": err}).Warn("[storage] pdf archive disabled")
		} else {
			archive = a
		}
	}

	catalog := usecase.NewCatalogUseCase(serviceRepo)
	if serviceRepo != nil {
		seedCatalog(ctx, catalog)
	}

	return Dependencies{
		Catalog:     catalog,
		Estimates:   usecase.NewEstimateUseCase(catalog, quoteRepo, pdf.NewQuoteRenderer(pdfCompanyName), archive),
		Diagnostics: usecase.NewDiagnosticsUseCase(inspector, cfg.DynamoDBEndpoint != "", cfg.ServicesTable != "" && cfg.QuotesTable != ""),
		Metrics:     metrics.New(),
	}
}

// connectStore returns nil when DynamoDB cannot be reached; the API then
// starts without a store and data endpoints answer 500.
func connectStore(ctx context.Context, cfg config.Config) repository.DynamoAPI {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		logrus.WithField("err", err).Error("[database] failed to create dynamodb client")
		return nil
	}

	if cfg.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg.ServicesTable, cfg.QuotesTable, repository.QuotesRecentIndex); err != nil {
			logrus.WithField("err", err).Warn("[database] table bootstrap failed")
		}
	}

	if _, err := repository.NewTableInspector(ddb).ListTables(ctx, 1); err != nil {
		logrus.WithFields(logrus.Fields{"endpoint": cfg.DynamoDBEndpoint, "err": err}).Error("[database] dynamodb not reachable; running without a store")
		return nil
	}
	logrus.WithField("region", cfg.AWSRegion).Info("[database] dynamodb connected")
	return ddb
}

func seedCatalog(ctx context.Context, catalog usecase.ICatalogUseCase) {
	n, err := catalog.SeedDefaults(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{"inserted": n, "err": err}).Warn("[catalog] seeding default services failed")
		return
	}
	if n > 0 {
		logrus.WithField("inserted", n).Info("[catalog] default services seeded")
	}
}

func setMiddlewares(router *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	router.Use(logger.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
	if m != nil {
		router.Use(m.Middleware())
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

package api

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-pro-directory/internal/locale"
	"github.com/gcbaptista/go-pro-directory/internal/metrics"
	"github.com/gcbaptista/go-pro-directory/model"
	"github.com/gcbaptista/go-pro-directory/services"
)

// API holds dependencies for API handlers, primarily the directory.
type API struct {
	directory    services.Directory
	formatter    *locale.Formatter
	defaultOrder model.SortOrder
	logger       *zap.Logger
	page         *template.Template
}

// Options configures presentation details of the API. Zero values are valid.
type Options struct {
	Formatter    *locale.Formatter // nil means the default display locale
	DefaultOrder model.SortOrder   // used when a request carries no order; empty means natural
	Logger       *zap.Logger       // nil means no logging
}

// NewAPI creates a new API handler structure.
func NewAPI(directory services.Directory, opts Options) *API {
	if opts.Formatter == nil {
		opts.Formatter = locale.MustNewFormatter("")
	}
	if opts.DefaultOrder == "" {
		opts.DefaultOrder = model.SortNatural
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &API{
		directory:    directory,
		formatter:    opts.Formatter,
		defaultOrder: opts.DefaultOrder,
		logger:       opts.Logger,
		page:         pageTemplate,
	}
}

// NewRouter builds a gin engine with the standard middleware chain and all routes.
func NewRouter(directory services.Directory, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		RecoveryMiddleware(logger),
		metrics.Middleware(),
		CORSMiddleware(),
	)

	SetupRoutes(router, directory, opts)
	return router
}

// SetupRoutes defines all the routes of the directory service.
func SetupRoutes(router *gin.Engine, directory services.Directory, opts Options) {
	apiHandler := NewAPI(directory, opts)

	router.NoRoute(SendRouteNotFoundError)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Server-rendered listing page
	router.GET("/", apiHandler.PageHandler)

	router.GET("/roles", apiHandler.ListRolesHandler)

	professionalRoutes := router.Group("/professionals")
	{
		professionalRoutes.GET("", apiHandler.ListProfessionalsHandler)   // Run the query pipeline
		professionalRoutes.GET("/:id", apiHandler.GetProfessionalHandler) // Detail lookup
	}
}

// HealthCheckHandler reports that the service is up.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-pro-directory",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

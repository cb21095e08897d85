package handlers

import (
	"oil_heating/internal/logger"
	"oil_heating/internal/models"
	"oil_heating/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options carries HTTP-layer tunables. A zero RPS disables rate limiting.
type Options struct {
	RPS    float64
	Burst  int
	Range  models.PowerRange // default sweep range when a request gives none
	Policy string            // default sweep failure policy
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	limiter  *clientLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	h := &Handler{services: services, log: log, opts: opts}
	if opts.RPS > 0 && opts.Burst > 0 {
		h.limiter = newClientLimiter(opts.RPS, opts.Burst)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	// Versioned API endpoints (rate limited, protected)
	h.registerAPIRoutes(router)

	// Sweep streaming over WebSocket on the same port
	router.GET("/ws/sweep", h.rateLimit, h.wsSweep)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.rateLimit, h.userIdMiddleware)
	{
		h.registerCalculationRoutes(api)
		h.registerSweepRoutes(api)
		h.registerRunRoutes(api)
	}
}

func (h *Handler) registerCalculationRoutes(api *gin.RouterGroup) {
	calc := api.Group("/calculations")
	{
		calc.GET("/defaults", h.getDefaults)
		// Body example: {"inputs":{"heater":{"power":250000}},"record":true}
		calc.POST("", h.calculate)
	}
}

func (h *Handler) registerSweepRoutes(api *gin.RouterGroup) {
	sweeps := api.Group("/sweeps")
	{
		sweeps.POST("", h.sweep)
		sweeps.GET("/chart.pdf", h.sweepChartPDF)
		sweeps.GET("/table.xlsx", h.sweepTableXLSX)
	}
}

func (h *Handler) registerRunRoutes(api *gin.RouterGroup) {
	runs := api.Group("/runs")
	{
		runs.GET("", h.listRuns)
		runs.GET("/:id", h.getRun)
	}
}

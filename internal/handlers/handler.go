package handlers

import (
	"time"

	_ "solar_kiosk/docs" // registers the swagger document
	"solar_kiosk/internal/logger"
	"solar_kiosk/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	wsInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, wsInterval: defaultInterval}
}

// SetStreamInterval changes the push period of /ws when the client asks for none.
func (h *Handler) SetStreamInterval(d time.Duration) {
	if d > 0 && d <= maxInterval {
		h.wsInterval = d
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Dashboard stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerTelemetryRoutes(api)
		h.registerCatalogRoutes(api)
		h.registerSessionRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerTelemetryRoutes(api *gin.RouterGroup) {
	api.GET("/telemetry", h.getTelemetry)
	// Body example: {"air_quality":"Moderate"}
	api.PUT("/telemetry/air-quality", h.setAirQuality)
	api.GET("/environment/summary", h.getEnvironmentSummary)
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	catalog := api.Group("/catalog")
	{
		catalog.GET("/devices", h.listDevices)
		catalog.GET("/payment-methods", h.listPaymentMethods)
	}
	api.GET("/stations", h.listStations)
}

func (h *Handler) registerSessionRoutes(api *gin.RouterGroup) {
	session := api.Group("/session")
	{
		session.GET("", h.getSession)
		// Body example: {"device_id":"smartphone","payment_method_id":"wave"}
		session.POST("/start", h.startSession)
		session.POST("/cancel", h.cancelSession)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
		logs.GET("/", h.getLogs)
	}
}

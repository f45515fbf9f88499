package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	corslib "github.com/rs/cors"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/config"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/health"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/middleware"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
)

type RouterConfig struct {
	Catalog     *catalog.Catalog
	Session     SessionController
	Health      *health.Checker
	HTTP        *config.HTTPConfig
	HTTPMetrics *metrics.HTTPMetrics
	Module      logging.Module
}

// NewRouter builds the gin engine with every route and wraps it in CORS
// handling for the browser client.
func NewRouter(cfg RouterConfig) http.Handler {
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      cfg.Module,
		HTTPMetrics: cfg.HTTPMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, errTypeNotFound, "route not found")
	})

	if cfg.Health != nil {
		r.GET("/health/live", cfg.Health.LiveHandler())
		r.GET("/health/ready", cfg.Health.ReadyHandler())
		r.GET("/health", cfg.Health.ReadyHandler())
	}

	festivals := NewFestivalHandler(cfg.Catalog, cfg.Session)
	pins := NewPinHandler(cfg.Catalog, cfg.Session)
	notifications := NewNotificationHandler(cfg.Session)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/festivals", festivals.ListFestivals)
		v1.POST("/festivals/nearest/enter", festivals.EnterNearest)
		v1.POST("/festivals/:festivalID/enter", festivals.EnterFestival)
		v1.GET("/session", festivals.State)
		v1.POST("/session/leave", festivals.Leave)

		v1.GET("/pins", pins.ListPins)
		v1.GET("/pins/:performerID", pins.PinStatus)
		v1.POST("/pins/:performerID/toggle", pins.TogglePin)

		v1.GET("/notifications", notifications.List)
		v1.GET("/notifications/stream", notifications.Stream)

		proximity := v1.Group("/proximity")
		proximity.Use(RateLimitGin(cfg.HTTP.ProximityRateRequests, cfg.HTTP.ProximityRateWindow))
		{
			proximity.POST("/food", notifications.QueryNearestFood)
			proximity.POST("/restrooms", notifications.QueryNearestRestroom)
		}
	}

	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.HTTP.CORSAllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Cache-Control", "Last-Event-ID", "traceparent"},
		AllowCredentials: false,
	})

	return c.Handler(r)
}

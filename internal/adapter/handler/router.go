package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlens/talentlens/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	reviewHandler *Review
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, reviewHandler *Review) *Router {
	return &Router{
		cfg:           cfg,
		reviewHandler: reviewHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	e.GET("/", rt.reviewHandler.Index)
	e.GET("/review/:id", rt.reviewHandler.Dashboard)
	e.GET("/review/:id/report.pdf", rt.reviewHandler.Report)

	api := e.Group("/api")
	api.POST("/upload", rt.reviewHandler.Upload)
	api.POST("/transcribe", rt.reviewHandler.Analyze)
	api.GET("/sessions/:id", rt.reviewHandler.Session)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

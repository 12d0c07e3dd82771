package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Ingestion and registration
	s.echo.POST("/api/events", s.handleIngestEvent)
	s.echo.POST("/api/contents", s.handleCreateContent)
	s.echo.PUT("/api/profiles/:id", s.handleUpsertProfile)

	// Score reads
	s.echo.GET("/api/contents/:id/score", s.handleGetContentScore)
	s.echo.POST("/api/users/:id/score/refresh", s.handleRefreshUserScore)

	// Live score stream
	s.echo.GET("/ws/scores/:id", s.handleWebSocket)
}

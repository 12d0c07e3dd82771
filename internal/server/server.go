package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/polithane/polithane/internal/config"
	"github.com/polithane/polithane/internal/correlation"
	"github.com/polithane/polithane/internal/domain"
	apperrors "github.com/polithane/polithane/internal/errors"
	"github.com/polithane/polithane/internal/websocket"
)

// scoreEngine is the engine surface the handlers need.
type scoreEngine interface {
	ProcessEvent(ev domain.InteractionEvent)
	Recompute(ctx context.Context, contentID uuid.UUID) (domain.ScoreBreakdown, error)
	RefreshUserScore(ctx context.Context, userID uuid.UUID) (int64, error)
}

// pinger is the minimal readiness-check surface of a backing store.
type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	engine    scoreEngine
	contents  domain.ContentRepository
	profiles  domain.ProfileRepository
	hub       *websocket.Hub
	postgres  pinger
	redis     pinger
	startTime time.Time
}

func NewServer(cfg *config.Config, engine scoreEngine, contents domain.ContentRepository, profiles domain.ProfileRepository, hub *websocket.Hub, postgres, redis pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		engine:    engine,
		contents:  contents,
		profiles:  profiles,
		hub:       hub,
		postgres:  postgres,
		redis:     redis,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

// correlationMiddleware attaches a fresh correlation ID to every request
// context so the slog handler can annotate all records for the request.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := correlation.NewID()
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

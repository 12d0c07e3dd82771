package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/polithane/polithane/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleWebSocket(c echo.Context) error {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(400, "Invalid content ID")
	}

	ctx := c.Request().Context()

	if _, err := s.contents.GetByID(ctx, contentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.String(404, "Content not found")
		}
		slog.Error("Failed to load content for subscription", "content_id", contentID, "error", err)
		return c.String(500, "Internal error")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket", "error", err)
		return nil
	}

	if err := s.hub.Register(contentID, conn); err != nil {
		slog.Warn("Failed to register subscriber", "content_id", contentID, "error", err)
		// Connection already closed by hub, just return
		return nil
	}

	// Read pump (blocks until disconnect)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.hub.Unregister(contentID, conn)

	return nil
}

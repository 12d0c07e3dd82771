// Package websocket implements the live score feed. A single hub goroutine
// owns all client state; connections, disconnections and broadcasts arrive
// as commands on one channel, so no locks are needed.
package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/polithane/polithane/internal/domain"
	"github.com/polithane/polithane/internal/metrics"
)

const (
	maxClientsPerContent = 50
	writeTimeout         = 5 * time.Second
)

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	contentID uuid.UUID
	conn      *websocket.Conn
	errCh     chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	contentID uuid.UUID
	conn      *websocket.Conn
}

func (cmdUnregister) hubCmd() {}

type cmdBroadcast struct {
	contentID uuid.UUID
	data      []byte
}

func (cmdBroadcast) hubCmd() {}

type cmdGetClientCount struct {
	contentID uuid.UUID
	replyCh   chan int
}

func (cmdGetClientCount) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// --- Per-connection writer ---

type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, 16),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg, ok := <-cw.sendCh:
			if !ok {
				return
			}
			cw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	cw.conn.Close()
}

// --- Hub ---

// Hub fans score updates out to the subscribers of each content item.
// It implements domain.ScoreBroadcaster.
type Hub struct {
	cmdCh   chan hubCmd
	clients map[uuid.UUID]map[*websocket.Conn]*clientWriter
}

// NewHub creates and starts the hub goroutine.
func NewHub() *Hub {
	hub := &Hub{
		cmdCh:   make(chan hubCmd, 256),
		clients: make(map[uuid.UUID]map[*websocket.Conn]*clientWriter),
	}
	go hub.run()
	return hub
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdRegister:
			h.handleRegister(c)
		case cmdUnregister:
			h.handleUnregister(c.contentID, c.conn)
		case cmdBroadcast:
			h.handleBroadcast(c)
		case cmdGetClientCount:
			c.replyCh <- len(h.clients[c.contentID])
		case cmdStop:
			h.handleStop()
			return
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	clients, exists := h.clients[c.contentID]
	if !exists {
		clients = make(map[*websocket.Conn]*clientWriter)
		h.clients[c.contentID] = clients
	}

	if len(clients) >= maxClientsPerContent {
		slog.Warn("Rejecting subscriber: max clients reached",
			"content_id", c.contentID, "max_clients", maxClientsPerContent)
		c.conn.Close()
		c.errCh <- fmt.Errorf("max clients per content (%d) reached", maxClientsPerContent)
		return
	}

	clients[c.conn] = newClientWriter(c.conn)
	metrics.WebSocketClientsCurrent.Inc()
	slog.Debug("Subscriber registered", "content_id", c.contentID, "total_clients", len(clients))
	c.errCh <- nil
}

func (h *Hub) handleUnregister(contentID uuid.UUID, conn *websocket.Conn) {
	clients, exists := h.clients[contentID]
	if !exists {
		return
	}

	cw, exists := clients[conn]
	if !exists {
		return
	}

	cw.stop()
	delete(clients, conn)
	metrics.WebSocketClientsCurrent.Dec()

	if len(clients) == 0 {
		delete(h.clients, contentID)
	}
	slog.Debug("Subscriber unregistered", "content_id", contentID, "remaining_clients", len(clients))
}

func (h *Hub) handleBroadcast(c cmdBroadcast) {
	clients, exists := h.clients[c.contentID]
	if !exists {
		return
	}

	var slow []*websocket.Conn
	for conn, cw := range clients {
		select {
		case cw.sendCh <- c.data:
			// sent successfully
		default:
			// client is slow, mark for removal
			slow = append(slow, conn)
		}
	}

	for _, conn := range slow {
		slog.Warn("Disconnecting slow subscriber", "content_id", c.contentID)
		metrics.WebSocketSlowClientsEvicted.Inc()
		h.handleUnregister(c.contentID, conn)
	}
}

func (h *Hub) handleStop() {
	for contentID, clients := range h.clients {
		for _, cw := range clients {
			cw.stop()
			metrics.WebSocketClientsCurrent.Dec()
		}
		delete(h.clients, contentID)
	}
}

// --- Public API ---

// Register adds a subscriber connection for a content item.
func (h *Hub) Register(contentID uuid.UUID, conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	h.cmdCh <- cmdRegister{contentID: contentID, conn: conn, errCh: errCh}
	return <-errCh
}

// Unregister removes a subscriber connection.
func (h *Hub) Unregister(contentID uuid.UUID, conn *websocket.Conn) {
	h.cmdCh <- cmdUnregister{contentID: contentID, conn: conn}
}

// Broadcast sends a score update to all subscribers of a content item.
func (h *Hub) Broadcast(contentID uuid.UUID, update domain.ScoreUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		slog.Error("Failed to marshal score update", "error", err)
		return
	}
	h.cmdCh <- cmdBroadcast{contentID: contentID, data: data}
}

// GetClientCount returns the subscriber count for a content item.
func (h *Hub) GetClientCount(contentID uuid.UUID) int {
	replyCh := make(chan int, 1)
	h.cmdCh <- cmdGetClientCount{contentID: contentID, replyCh: replyCh}
	return <-replyCh
}

// Stop disconnects all subscribers and terminates the hub goroutine.
func (h *Hub) Stop() {
	h.cmdCh <- cmdStop{}
}

package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"github.com/polithane/polithane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHub sets up a Hub with a test HTTP server that upgrades connections to
// WebSocket. Returns the hub and a dial function to connect subscribers.
func testHub(t *testing.T) (*Hub, func(contentID uuid.UUID) *ws.Conn) {
	t.Helper()

	hub := NewHub()
	t.Cleanup(func() { hub.Stop() })

	upgrader := ws.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatalf("upgrade failed: %v", err)
		}
		contentID := uuid.MustParse(r.URL.Query().Get("content"))
		_ = hub.Register(contentID, conn)

		// Read loop to detect disconnects
		go func() {
			defer hub.Unregister(contentID, conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					break
				}
			}
		}()
	}))

	t.Cleanup(func() { server.Close() })

	dial := func(contentID uuid.UUID) *ws.Conn {
		t.Helper()
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "?content=" + contentID.String()
		conn, _, err := ws.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		return conn
	}

	return hub, dial
}

// waitForClientCount polls until the hub has the expected count for a content item.
func waitForClientCount(hub *Hub, contentID uuid.UUID, expected int) bool {
	for range 100 {
		if hub.GetClientCount(contentID) == expected {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func readUpdate(t *testing.T, conn *ws.Conn) domain.ScoreUpdate {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var update domain.ScoreUpdate
	require.NoError(t, json.Unmarshal(msg, &update))
	return update
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub, dial := testHub(t)
	contentID := uuid.New()

	conn := dial(contentID)
	require.True(t, waitForClientCount(hub, contentID, 1))

	hub.Broadcast(contentID, domain.ScoreUpdate{FinalScore: 230, Status: "active"})

	update := readUpdate(t, conn)
	assert.Equal(t, int64(230), update.FinalScore)
	assert.Equal(t, "active", update.Status)
}

func TestHub_MultipleClients(t *testing.T) {
	hub, dial := testHub(t)
	contentID := uuid.New()

	conn1 := dial(contentID)
	conn2 := dial(contentID)
	require.True(t, waitForClientCount(hub, contentID, 2))

	hub.Broadcast(contentID, domain.ScoreUpdate{FinalScore: 77, Status: "active"})

	// Both subscribers should receive the update
	for _, conn := range []*ws.Conn{conn1, conn2} {
		update := readUpdate(t, conn)
		assert.Equal(t, int64(77), update.FinalScore)
	}
}

func TestHub_BroadcastIsolation(t *testing.T) {
	hub, dial := testHub(t)
	a, b := uuid.New(), uuid.New()

	connA := dial(a)
	connB := dial(b)
	require.True(t, waitForClientCount(hub, a, 1))
	require.True(t, waitForClientCount(hub, b, 1))

	hub.Broadcast(a, domain.ScoreUpdate{FinalScore: 10, Status: "active"})

	update := readUpdate(t, connA)
	assert.Equal(t, int64(10), update.FinalScore)

	// Subscriber of another content must not receive anything
	connB.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := connB.ReadMessage()
	assert.Error(t, err)
}

func TestHub_GetClientCount(t *testing.T) {
	hub, dial := testHub(t)
	contentID := uuid.New()

	assert.Equal(t, 0, hub.GetClientCount(contentID))

	conn1 := dial(contentID)
	require.True(t, waitForClientCount(hub, contentID, 1))

	dial(contentID)
	require.True(t, waitForClientCount(hub, contentID, 2))

	conn1.Close()
	require.True(t, waitForClientCount(hub, contentID, 1))
}

func TestHub_BroadcastNoClients(t *testing.T) {
	hub, _ := testHub(t)
	// Should not panic
	hub.Broadcast(uuid.New(), domain.ScoreUpdate{FinalScore: 50, Status: "active"})
}

func TestHub_MaxClientsPerContent(t *testing.T) {
	hub := NewHub()
	t.Cleanup(func() { hub.Stop() })

	contentID := uuid.New()

	// Register maxClientsPerContent subscribers, all should succeed
	conns := make([]*ws.Conn, 0, maxClientsPerContent)
	for i := 0; i < maxClientsPerContent; i++ {
		server, client := newTestConnPair(t)
		errCh := make(chan error, 1)
		hub.cmdCh <- cmdRegister{contentID: contentID, conn: server, errCh: errCh}
		err := <-errCh
		require.NoError(t, err, "client %d should register successfully", i)
		conns = append(conns, client)
	}

	assert.Equal(t, maxClientsPerContent, hub.GetClientCount(contentID))

	// The next subscriber should be rejected
	server, client := newTestConnPair(t)
	errCh := make(chan error, 1)
	hub.cmdCh <- cmdRegister{contentID: contentID, conn: server, errCh: errCh}
	err := <-errCh
	assert.Error(t, err, "client beyond max should be rejected")
	assert.Contains(t, err.Error(), "max clients per content")

	_ = client
	for _, c := range conns {
		c.Close()
	}
}

// newTestConnPair creates a connected pair of WebSocket connections for testing.
func newTestConnPair(t *testing.T) (server *ws.Conn, client *ws.Conn) {
	t.Helper()
	upgrader := ws.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	ready := make(chan *ws.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatalf("upgrade failed: %v", err)
		}
		ready <- conn
	}))
	t.Cleanup(func() { srv.Close() })

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientConn.Close() })

	serverConn := <-ready
	t.Cleanup(func() { serverConn.Close() })

	return serverConn, clientConn
}

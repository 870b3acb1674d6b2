package livefeed

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/notification"
)

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(notification.Notification{
		ID:        "n1",
		Message:   "New order received: 48213377 for ₹2150",
		Type:      notification.TypeOrder,
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "n1",
		"message": "New order received: 48213377 for ₹2150",
		"type": "ORDER",
		"isRead": false,
		"isPinned": false,
		"createdAt": "2026-03-14T10:00:00Z"
	}`, string(msg))

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	hub := NewHub(nil)

	assert.NotPanics(t, func() {
		hub.Broadcast(notification.Notification{ID: "n1"})
	})
}

package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID string
	Conn   *websocket.Conn

	writeMu sync.Mutex // gorilla allows one concurrent writer per connection
}

func (c *WSClient) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Listening reports whether userID has at least one open connection. Nil-safe.
func (h *RealtimeHub) Listening(userID string) bool {
	if h == nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// BroadcastMetrics pushes a metrics.updated frame to every connection of userID and
// returns how many writes succeeded. Nil-safe.
func (h *RealtimeHub) BroadcastMetrics(userID string, metrics Adherence) int {
	if h == nil {
		return 0
	}
	msg, _ := json.Marshal(MetricsFrame(metrics))

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	sent := 0
	for _, c := range targets {
		if err := c.WriteMessage(websocket.TextMessage, msg); err == nil {
			sent++
		}
	}
	return sent
}

// MetricsFrame is the payload written to live-metrics sockets.
func MetricsFrame(metrics Adherence) map[string]any {
	return map[string]any{
		"kind":    "metrics.updated",
		"metrics": metrics,
	}
}

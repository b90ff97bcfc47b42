package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/krishisahayak/app-backend/internal/types"
)

const writeWait = 5 * time.Second

// Event is one message on the UI event stream.
type Event struct {
	Type    string         `json:"type"` // "message" or "alert"
	Message *types.Message `json:"message,omitempty"`
	Kind    string         `json:"kind,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Hub fans conversation events and alerts out to connected UI shells. It
// implements chat.Notifier.
type Hub struct {
	logger   *logrus.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an event hub. The server only binds locally, so any origin
// the UI shell presents is accepted.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// MessageAppended broadcasts a new conversation message.
func (h *Hub) MessageAppended(msg types.Message) {
	h.broadcast(Event{Type: "message", Message: &msg})
}

// Alert broadcasts a user-visible alert.
func (h *Hub) Alert(kind, text string) {
	h.broadcast(Event{Type: "alert", Kind: kind, Text: text})
}

func (h *Hub) broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ev); err != nil {
			h.logger.WithError(err).Debug("dropping stream client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Stream handles GET /app/stream, upgrading to a WebSocket that receives
// events until the client disconnects.
func (h *Hub) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// The stream is one-way; the read loop only notices disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()

	return nil
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

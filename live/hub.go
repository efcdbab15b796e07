package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/swiss-tournament/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

// MessageStandingsUpdated is sent after every successful mutation and once
// to each client when it connects.
const MessageStandingsUpdated = "STANDINGS_UPDATED"

type Message struct {
	Type      string            `json:"type"`
	Reason    string            `json:"reason,omitempty"`
	Standings []models.Standing `json:"standings"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans standings updates out to connected websocket clients.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	mu      sync.RWMutex
	clients map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run owns the client set until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("live client registered", slog.Int("clients", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if h.clients[client] {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("live client unregistered", slog.Int("clients", total))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block everyone else.
					delete(h.clients, client)
					close(client.send)
					h.logger.Warn("live client dropped: send buffer full")
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// StandingsChanged implements services.StandingsNotifier.
func (h *Hub) StandingsChanged(ctx context.Context, reason string, standings []models.Standing) {
	payload, err := json.Marshal(Message{Type: MessageStandingsUpdated, Reason: reason, Standings: standings})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode standings update", slog.Any("error", err))
		return
	}
	select {
	case h.broadcast <- payload:
	case <-h.done:
	case <-ctx.Done():
	}
}

// Attach registers conn with the hub and starts its pumps. initial, when not
// nil, is queued before any broadcast.
func (h *Hub) Attach(conn *websocket.Conn, initial *Message) {
	client := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	if initial != nil {
		if payload, err := json.Marshal(initial); err == nil {
			client.send <- payload
		}
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}

// readPump only drains control frames; clients have nothing to say.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { return c.conn.SetReadDeadline(time.Now().Add(pongWait)) })

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("live client read error", slog.Any("error", err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

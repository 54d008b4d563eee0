// Package live pushes scoreboard snapshots to connected display clients over
// websockets. The hub holds no scoring state: services hand it freshly
// computed payloads whenever the underlying records change.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Message types pushed to clients.
const (
	MessageScoreboardUpdated = "SCOREBOARD_UPDATED"
	MessageSettingsUpdated   = "SETTINGS_UPDATED"
)

// Message is the envelope every push uses.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client is one connected display.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// Hub fans broadcast messages out to every connected client. All bookkeeping
// happens on the Run loop; callers only touch the channels.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run processes register, unregister and broadcast events until the process
// exits. Start it once in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("live client connected",
				slog.String("client", client.ID),
				slog.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				h.logger.Info("live client disconnected",
					slog.String("client", client.ID),
					slog.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it rather than block the hub.
					delete(h.clients, client)
					client.closeSend()
					h.logger.Warn("dropping slow live client", slog.String("client", client.ID))
				}
			}
		}
	}
}

// Broadcast pushes a typed payload to every connected client. Marshalling
// failures are logged and the message is dropped; the scoreboard itself is
// always re-derivable, so a lost push only delays the next poll.
func (h *Hub) Broadcast(messageType string, payload any) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		h.logger.Error("failed to marshal live message",
			slog.String("type", messageType), slog.Any("error", err))
		return
	}
	h.broadcast <- data
}

// Register attaches a freshly upgraded connection to the hub and starts its
// read/write pumps.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	client := &Client{
		ID:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.send)
		c.closed = true
	}
}

// readPump discards inbound frames (the feed is one-way) and keeps the pong
// deadline fresh.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
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

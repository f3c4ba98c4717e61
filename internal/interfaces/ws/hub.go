package ws

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

// Message is the envelope pushed to live tournament subscribers.
type Message struct {
	Type         string `json:"type"`
	TournamentID string `json:"tournament_id"`
	Payload      any    `json:"payload,omitempty"`
}

type client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	room      string
	closeOnce sync.Once
}

// close must run with hub.mu held for writing so no broadcast is sending.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// Hub fans messages out to websocket clients grouped by tournament id.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]map[*client]struct{}
	register   chan *client
	unregister chan *client
	done       chan struct{}
	upgrader   websocket.Upgrader
	logger     *logging.Logger
}

func NewHub(allowedOrigins []string, logger *logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Default()
	}

	h := &Hub{
		rooms:      make(map[string]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// Run owns room membership until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for room, clients := range h.rooms {
				for c := range clients {
					c.close()
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			clients, ok := h.rooms[c.room]
			if !ok {
				clients = make(map[*client]struct{})
				h.rooms[c.room] = clients
			}
			clients[c] = struct{}{}
			size := len(clients)
			h.mu.Unlock()
			h.logger.Debug("live client registered", "tournament_id", c.room, "clients", size)

		case c := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[c.room]; ok {
				if _, member := clients[c]; member {
					delete(clients, c)
					c.close()
				}
				if len(clients) == 0 {
					delete(h.rooms, c.room)
				}
			}
			h.mu.Unlock()
			h.logger.Debug("live client unregistered", "tournament_id", c.room)
		}
	}
}

// ClientCount returns the number of clients subscribed to a tournament.
func (h *Hub) ClientCount(tournamentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[tournamentID])
}

// BroadcastToRoom never blocks; clients whose buffer is full miss the message.
func (h *Hub) BroadcastToRoom(ctx context.Context, tournamentID string, message Message) {
	payload, err := sonic.Marshal(message)
	if err != nil {
		h.logger.WarnContext(ctx, "marshal live message failed", "tournament_id", tournamentID, "type", message.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for c := range h.rooms[tournamentID] {
		select {
		case c.send <- payload:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.logger.WarnContext(ctx, "live message dropped for slow clients",
			"tournament_id", tournamentID,
			"type", message.Type,
			"dropped", dropped,
		)
	}
}

// Serve upgrades the request and subscribes the connection to tournamentID.
// initial, when set, is the first message the client receives. The upgrader
// has already answered the request when an error is returned.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, tournamentID string, initial *Message) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		room: tournamentID,
	}
	if initial != nil {
		if payload, err := sonic.Marshal(initial); err == nil {
			c.send <- payload
		}
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return nil
	}

	go c.writePump()
	go c.readPump()
	return nil
}

// readPump only drains control frames; clients never send commands.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("live client read failed", "tournament_id", c.room, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// originChecker mirrors the CORS allow list; an empty list or "*" accepts
// any origin. Requests without an Origin header are not browser requests and
// are accepted.
func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "*" {
			allowAll = true
			continue
		}
		if candidate != "" {
			allowed[candidate] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}

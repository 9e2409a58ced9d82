// Package notify is the live event-stream transport for voyages: a
// WebSocket hub that fans out each appended voyage.Event to subscribers
// of that voyage's id, giving manual-mode interactive clients a concrete
// transport instead of leaving Notifier purely abstract.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/saltmarch/voyage-engine/internal/models"
)

// Message is the envelope every event is wrapped in before it reaches a
// subscriber's socket.
type Message struct {
	VoyageID string       `json:"voyage_id"`
	Event    models.Event `json:"event"`
}

// client represents one browser/CLI connection subscribed to a single
// voyage id.
type client struct {
	voyageID string
	conn     *websocket.Conn
	send     chan []byte
}

// Hub maintains the set of active per-voyage subscribers and fans out
// Notify calls to the right ones. It satisfies voyage.Notifier.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]bool // voyageID -> client set

	register   chan *client
	unregister chan *client
	broadcast  chan Message
}

// NewHub creates a Hub; callers must run Run() in a goroutine before any
// clients connect.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Message),
	}
}

// Run is the hub's event loop; it blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.voyageID] == nil {
				h.clients[c.voyageID] = make(map[*client]bool)
			}
			h.clients[c.voyageID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[c.voyageID]; ok {
				if _, ok := set[c]; ok {
					delete(set, c)
					close(c.send)
				}
				if len(set) == 0 {
					delete(h.clients, c.voyageID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				log.Printf("notify: failed to marshal event: %v", err)
				continue
			}
			h.mu.RLock()
			for c := range h.clients[msg.VoyageID] {
				select {
				case c.send <- payload:
				default:
					close(c.send)
					delete(h.clients[msg.VoyageID], c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Notify publishes event to every subscriber of voyageID. It never
// blocks the caller: if the hub's loop isn't keeping up the event is
// dropped for slow-consuming clients, not for the simulation.
func (h *Hub) Notify(ctx context.Context, voyageID string, event models.Event) error {
	select {
	case h.broadcast <- Message{VoyageID: voyageID, Event: event}:
	case <-ctx.Done():
		return ctx.Err()
	default:
		// The hub loop is busy; drop the event rather than stall the caller.
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades an HTTP request to a WebSocket subscribed to a
// single voyage's event stream.
func (h *Hub) ServeWs(voyageID string, w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{voyageID: voyageID, conn: conn, send: make(chan []byte, 64)}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
	return nil
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
}

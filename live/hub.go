package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"next24/globals"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Event is pushed to everyone watching an itinerary whenever it changes.
// Clients refetch the itinerary on receipt; the event carries no payload.
type Event struct {
	Action      string `json:"action"`
	ItineraryID string `json:"itineraryId"`
	UserID      string `json:"userId,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

type Client struct {
	Conn        *websocket.Conn
	Send        chan []byte
	ItineraryID string
	UserID      string
}

type broadcastMsg struct {
	ItineraryID string
	Data        []byte
}

// Hub fans events out to all clients subscribed to an itinerary.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	stop       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.ItineraryID] == nil {
				h.rooms[c.ItineraryID] = make(map[*Client]bool)
			}
			h.rooms[c.ItineraryID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.ItineraryID]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.ItineraryID] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.ItineraryID], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.stop)
}

// Broadcast notifies every watcher of itineraryID that it changed.
// Safe to call from any goroutine.
func (h *Hub) Broadcast(itineraryID, action string) {
	data, err := json.Marshal(Event{
		Action:      action,
		ItineraryID: itineraryID,
		Timestamp:   time.Now().Unix(),
	})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- broadcastMsg{ItineraryID: itineraryID, Data: data}:
	case <-h.stop:
	}
}

// add registers a client unless the hub has shut down.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.stop:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stop:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		itineraryID := ps.ByName("id")
		userID, _ := r.Context().Value(globals.UserIDKey).(string)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn:        conn,
			Send:        make(chan []byte, 256),
			ItineraryID: itineraryID,
			UserID:      userID,
		}

		if !hub.add(client) {
			conn.Close()
			return
		}
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only drains the connection; clients do not push events, the
// REST handlers do.
func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.remove(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

const broadcastBuffer = 256

// Message is the envelope pushed to live feed clients.
type Message struct {
	Type string      `json:"type"`
	At   time.Time   `json:"at"`
	Data interface{} `json:"data"`
}

// Hub fans out store events (new orders, stock changes) to connected
// websocket clients such as a kitchen display.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	done       chan struct{}
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			log.Debug().Msg("live feed client connected")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Stop ends Run and closes every client connection.
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues an event for every client. When the queue is full the
// event is dropped so request handlers never wait on slow clients.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	msg, err := json.Marshal(Message{Type: eventType, At: time.Now().UTC(), Data: payload})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("live feed: encode event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Str("event", eventType).Msg("live feed: buffer full, event dropped")
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Serve registers conn and keeps it open until the client disconnects. The
// feed is one-way; anything the client sends is discarded.
func (h *Hub) Serve(conn *websocket.Conn) {
	select {
	case h.register <- conn:
	case <-h.done:
		return
	}
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

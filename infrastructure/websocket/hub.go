package websocket

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"taskboard/pkg/logger"
)

// Hub tracks connected clients and their rooms and fans events out to them.
// A single run() goroutine owns all registry mutations; emits carry no
// acknowledgement and a failed write drops the connection.
type Hub struct {
	clients    map[*websocket.Conn]Client
	rooms      map[string]map[*websocket.Conn]bool
	register   chan Client
	unregister chan *websocket.Conn
	broadcast  chan BroadcastMessage
	mutex      sync.RWMutex
}

type Client struct {
	Conn   *websocket.Conn
	UserID uuid.UUID
	Room   string
}

type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type BroadcastMessage struct {
	Message Message
	Room    string
}

func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]Client),
		rooms:      make(map[string]map[*websocket.Conn]bool),
		register:   make(chan Client),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan BroadcastMessage),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client.Conn] = client
			if client.Room != "" {
				if h.rooms[client.Room] == nil {
					h.rooms[client.Room] = make(map[*websocket.Conn]bool)
				}
				h.rooms[client.Room][client.Conn] = true
			}
			h.mutex.Unlock()

			logger.Debug("Client connected", "user_id", client.UserID, "room", client.Room)

		case conn := <-h.unregister:
			h.mutex.Lock()
			if client, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				if client.Room != "" && h.rooms[client.Room] != nil {
					delete(h.rooms[client.Room], conn)
					if len(h.rooms[client.Room]) == 0 {
						delete(h.rooms, client.Room)
					}
				}
				conn.Close()
				logger.Debug("Client disconnected", "user_id", client.UserID, "room", client.Room)
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.RLock()
			if message.Room != "" {
				if conns, ok := h.rooms[message.Room]; ok {
					for conn := range conns {
						h.send(conn, message.Message)
					}
				}
			} else {
				for conn := range h.clients {
					h.send(conn, message.Message)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

func (h *Hub) send(conn *websocket.Conn, message Message) {
	if err := conn.WriteJSON(message); err != nil {
		logger.Warn("Websocket write failed, dropping connection", "error", err)
		// Non-blocking so the run() loop never deadlocks on its own channel.
		go func() { h.unregister <- conn }()
	}
}

// RegisterClient adds a connection. An empty room means the client is
// anonymous and receives no events.
func (h *Hub) RegisterClient(conn *websocket.Conn, userID uuid.UUID, room string) {
	h.register <- Client{Conn: conn, UserID: userID, Room: room}
}

func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.unregister <- conn
}

// EmitToRoom implements ports.Notifier.
func (h *Hub) EmitToRoom(room, event string, data any) {
	h.broadcast <- BroadcastMessage{
		Message: Message{Type: event, Data: data},
		Room:    room,
	}
}

func (h *Hub) EmitToAll(event string, data any) {
	h.broadcast <- BroadcastMessage{
		Message: Message{Type: event, Data: data},
	}
}

func (h *Hub) RoomClients(room string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if conns, ok := h.rooms[room]; ok {
		return len(conns)
	}
	return 0
}

func (h *Hub) TotalClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"taskboard/domain/ports"
	wshub "taskboard/infrastructure/websocket"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type WebSocketHandler struct {
	hub *wshub.Hub
}

func NewWebSocketHandler(hub *wshub.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket keeps the connection open until the peer drops it.
// Authenticated users join their personal room and receive task events;
// anonymous connections stay roomless and get nothing.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var userID uuid.UUID
	var room string

	if userContext := c.Locals("user"); userContext != nil {
		if user, ok := userContext.(*utils.UserContext); ok {
			userID = user.ID
			room = ports.UserRoom(user.ID)
		}
	}

	if userID == uuid.Nil {
		userID = uuid.New()
		logger.Debug("Anonymous websocket connection", "connection_id", userID)
	}

	h.hub.RegisterClient(c, userID, room)
	defer h.hub.UnregisterClient(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}

		// Echo pings so clients can keep the connection warm through proxies.
		if messageType == websocket.TextMessage && string(message) == "ping" {
			if err := c.WriteMessage(websocket.TextMessage, []byte("pong")); err != nil {
				break
			}
		}
	}
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"taskboard/interfaces/api/middleware"
	apiws "taskboard/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, wsHandler *apiws.WebSocketHandler, jwtSecret string) {
	// WebSocket with optional authentication
	app.Use("/ws", middleware.Optional(jwtSecret), wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	apiws "taskboard/interfaces/api/websocket"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, wsHandler *apiws.WebSocketHandler, jwtSecret string) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, jwtSecret)
	SetupUserRoutes(api, h, jwtSecret)
	SetupTaskRoutes(api, h, jwtSecret)

	// WebSocket needs app, not the api group
	SetupWebSocketRoutes(app, wsHandler, jwtSecret)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	users := api.Group("/users", middleware.Protected(jwtSecret))

	users.Get("/", h.UserHandler.ListUsers)
	users.Get("/:id", h.UserHandler.GetUser)
}

package handlers

import (
	"taskboard/domain/services"
	"taskboard/pkg/config"
)

// Services contains everything handlers need.
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(services.UserService, cfg),
		UserHandler: NewUserHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}

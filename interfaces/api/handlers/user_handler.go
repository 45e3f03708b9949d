package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns the member directory used to pick assignees.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *dto.UserToUserResponse(user)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Failed to get user", "userId", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

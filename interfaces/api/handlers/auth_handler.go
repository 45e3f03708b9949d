package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/interfaces/api/middleware"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
	cfg         *config.Config
}

func NewAuthHandler(userService services.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.ConflictResponse(c, "Email already registered")
		}
		logger.ErrorContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.RegisterResponse{
		Message: "Registration successful. Please login.",
		User:    *dto.UserToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.ErrorContext(ctx, "Login failed", "email", req.Email, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	h.setSessionCookie(c, token)

	return utils.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return utils.SuccessResponse(c, dto.LogoutResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cfg.App.Env == "production",
		SameSite: "Lax",
		MaxAge:   h.cfg.JWT.TTLHours * int(time.Hour/time.Second),
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.cfg.App.Env == "production",
		SameSite: "Lax",
		MaxAge:   -1,
	})
}

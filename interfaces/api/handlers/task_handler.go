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

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.Create(ctx, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrAssigneeNotFound) {
			return utils.ValidationErrorResponse(c, []utils.FieldError{
				{Field: "assignedToId", Message: "assignee does not exist"},
			})
		}
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// GetTasks lists tasks for the named view. Unknown or missing views return
// the default listing.
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	view := c.Query("view")

	tasks, err := h.taskService.ListByView(ctx, user.ID, view)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "view", view, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) SearchTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := c.Query("q")

	tasks, err := h.taskService.Search(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Task search failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Failed to get task", "taskId", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.Update(ctx, taskID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, services.ErrAssigneeNotFound):
			return utils.ValidationErrorResponse(c, []utils.FieldError{
				{Field: "assignedToId", Message: "assignee does not exist"},
			})
		}
		logger.ErrorContext(ctx, "Failed to update task", "taskId", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		logger.ErrorContext(ctx, "Failed to delete task", "taskId", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

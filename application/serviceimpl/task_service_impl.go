package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	notifier ports.Notifier
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository, notifier ports.Notifier) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.userRepo.GetByID(ctx, req.AssignedToID); err != nil {
		logger.WarnContext(ctx, "Assignee does not exist", "assigned_to_id", req.AssignedToID)
		return nil, services.ErrAssigneeNotFound
	}

	task := &models.Task{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Priority:     models.Priority(req.Priority),
		Status:       models.StatusTodo,
		DueDate:      req.DueDate,
		CreatorID:    creatorID,
		AssignedToID: req.AssignedToID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if req.Status != "" {
		task.Status = models.Status(req.Status)
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "creator_id", creatorID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "assigned_to_id", task.AssignedToID)

	s.notifier.EmitToRoom(ports.UserRoom(task.AssignedToID), dto.EventTaskCreated, dto.TaskToTaskResponse(task))

	return task, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) ListByView(ctx context.Context, userID uuid.UUID, view string) ([]*models.Task, error) {
	switch view {
	case services.ViewAssigned:
		return s.taskRepo.ListByAssignee(ctx, userID)
	case services.ViewCreated:
		return s.taskRepo.ListByCreator(ctx, userID)
	case services.ViewOverdue:
		return s.taskRepo.ListOverdue(ctx, time.Now())
	default:
		return s.taskRepo.List(ctx)
	}
}

func (s *TaskServiceImpl) Update(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, services.ErrTaskNotFound
	}

	// The previous status read and the update write are separate storage
	// calls; concurrent updates can race on "from". The status-changed event
	// is advisory, so that is tolerated.
	previousStatus := task.Status

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Priority != "" {
		task.Priority = models.Priority(req.Priority)
	}
	if req.Status != "" {
		task.Status = models.Status(req.Status)
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.AssignedToID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AssignedToID); err != nil {
			logger.WarnContext(ctx, "Assignee does not exist", "assigned_to_id", *req.AssignedToID)
			return nil, services.ErrAssigneeNotFound
		}
		task.AssignedToID = *req.AssignedToID
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)

	s.notifier.EmitToRoom(ports.UserRoom(task.AssignedToID), dto.EventTaskUpdated, dto.TaskToTaskResponse(task))

	if req.Status != "" && previousStatus != task.Status {
		s.notifier.EmitToRoom(ports.UserRoom(task.CreatorID), dto.EventTaskStatusChanged, dto.StatusChangedEvent{
			TaskID: task.ID,
			Title:  task.Title,
			From:   string(previousStatus),
			To:     string(task.Status),
		})
	}

	return task, nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		return nil, services.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)

	s.notifier.EmitToRoom(ports.UserRoom(task.AssignedToID), dto.EventTaskDeleted, dto.TaskDeletedEvent{ID: task.ID})

	return task, nil
}

// Search returns tasks whose title or description contains the query. A blank
// query short-circuits to an empty result without touching storage.
func (s *TaskServiceImpl) Search(ctx context.Context, query string) ([]*models.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.Task{}, nil
	}

	return s.taskRepo.Search(ctx, query)
}

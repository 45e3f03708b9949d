package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// View names accepted by ListByView. Any other value falls back to the
// unfiltered list.
const (
	ViewAssigned = "assigned"
	ViewCreated  = "created"
	ViewOverdue  = "overdue"
)

type TaskService interface {
	Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	ListByView(ctx context.Context, userID uuid.UUID, view string) ([]*models.Task, error)
	Update(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	Search(ctx context.Context, query string) ([]*models.Task, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error

	// View queries. The three named views exclude completed tasks and order by
	// due date ascending; List returns everything, newest first.
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListOverdue(ctx context.Context, now time.Time) ([]*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)

	// Search matches the query as a case-insensitive substring of title or description.
	Search(ctx context.Context, query string) ([]*models.Task, error)
}

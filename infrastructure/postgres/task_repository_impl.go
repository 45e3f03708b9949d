package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// withRelations preloads the creator and assignee that responses expand.
func (r *TaskRepositoryImpl) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Creator").Preload("AssignedTo")
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return err
	}
	// Reload with relations so the created record returns creator/assignee expanded.
	return r.withRelations(ctx).Where("id = ?", task.ID).First(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.withRelations(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	// Save writes all fields; partial-update semantics are resolved in the
	// service before this point.
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return err
	}
	return r.withRelations(ctx).Where("id = ?", task.ID).First(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withRelations(ctx).
		Where("assigned_to_id = ? AND status <> ?", userID, models.StatusCompleted).
		Order("due_date asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withRelations(ctx).
		Where("creator_id = ? AND status <> ?", userID, models.StatusCompleted).
		Order("due_date asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListOverdue(ctx context.Context, now time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withRelations(ctx).
		Where("due_date < ? AND status <> ?", now, models.StatusCompleted).
		Order("due_date asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withRelations(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Search(ctx context.Context, query string) ([]*models.Task, error) {
	var tasks []*models.Task
	pattern := "%" + query + "%"
	err := r.withRelations(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Description  string     `json:"description" validate:"omitempty,max=2000"`
	Priority     string     `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	Status       string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW COMPLETED"`
	DueDate      *time.Time `json:"dueDate" validate:"omitempty"`
	AssignedToID uuid.UUID  `json:"assignedToId" validate:"required"`
}

// UpdateTaskRequest carries a partial update; zero-valued fields are left unchanged.
type UpdateTaskRequest struct {
	Title        string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description  string     `json:"description" validate:"omitempty,max=2000"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status       string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW COMPLETED"`
	DueDate      *time.Time `json:"dueDate" validate:"omitempty"`
	AssignedToID *uuid.UUID `json:"assignedToId" validate:"omitempty"`
}

type TaskResponse struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	DueDate     *time.Time   `json:"dueDate"`
	Creator     UserResponse `json:"creator"`
	AssignedTo  UserResponse `json:"assignedTo"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

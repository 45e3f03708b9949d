package models

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReview     Status = "REVIEW"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string    `gorm:"not null"`
	Description  string
	Priority     Priority `gorm:"type:varchar(16);not null;default:'MEDIUM'"`
	Status       Status   `gorm:"type:varchar(16);not null;default:'TODO'"`
	DueDate      *time.Time
	CreatorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Creator      User      `gorm:"foreignKey:CreatorID"`
	AssignedToID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedTo   User      `gorm:"foreignKey:AssignedToID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether the task's due date is strictly in the past and
// the task has not been completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

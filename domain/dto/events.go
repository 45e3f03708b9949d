package dto

import (
	"time"

	"github.com/google/uuid"
)

// Push event names delivered over the websocket channel. Events are invalidation
// hints only; the REST API stays the source of truth.
const (
	EventTaskCreated       = "task:created"
	EventTaskUpdated       = "task:updated"
	EventTaskDeleted       = "task:deleted"
	EventTaskStatusChanged = "task:status-changed"
	EventTaskOverdue       = "task:overdue"
)

type StatusChangedEvent struct {
	TaskID uuid.UUID `json:"taskId"`
	Title  string    `json:"title"`
	From   string    `json:"from"`
	To     string    `json:"to"`
}

type TaskDeletedEvent struct {
	ID uuid.UUID `json:"id"`
}

type TaskOverdueEvent struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"dueDate"`
}

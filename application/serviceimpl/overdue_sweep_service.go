package serviceimpl

import (
	"context"
	"time"

	"taskboard/domain/dto"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/pkg/logger"
	"taskboard/pkg/scheduler"
)

// OverdueSweepService periodically pushes overdue hints to assignees. Clients
// that missed mutation events (or simply left a task to rot) get a nudge to
// re-fetch; the sweep carries no state and the REST API stays authoritative.
type OverdueSweepService struct {
	taskRepo  repositories.TaskRepository
	notifier  ports.Notifier
	scheduler scheduler.EventScheduler
	interval  time.Duration
}

func NewOverdueSweepService(
	taskRepo repositories.TaskRepository,
	notifier ports.Notifier,
	eventScheduler scheduler.EventScheduler,
	interval time.Duration,
) *OverdueSweepService {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	return &OverdueSweepService{
		taskRepo:  taskRepo,
		notifier:  notifier,
		scheduler: eventScheduler,
		interval:  interval,
	}
}

// RegisterSweepJob schedules the sweep with the event scheduler.
func (s *OverdueSweepService) RegisterSweepJob() error {
	return s.scheduler.AddJob("overdue_sweep", "@every "+s.interval.String(), func() {
		s.RunSweep(context.Background())
	})
}

func (s *OverdueSweepService) RunSweep(ctx context.Context) {
	tasks, err := s.taskRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Overdue sweep query failed", "error", err)
		return
	}

	for _, task := range tasks {
		s.notifier.EmitToRoom(ports.UserRoom(task.AssignedToID), dto.EventTaskOverdue, dto.TaskOverdueEvent{
			ID:      task.ID,
			Title:   task.Title,
			DueDate: *task.DueDate,
		})
	}

	if len(tasks) > 0 {
		logger.InfoContext(ctx, "Overdue sweep completed", "overdue", len(tasks))
	}
}

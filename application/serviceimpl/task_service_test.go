package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/services"
)

type recordedEvent struct {
	Room  string
	Event string
	Data  any
}

// notifierRecorder captures emitted events for assertions.
type notifierRecorder struct {
	events []recordedEvent
}

func (r *notifierRecorder) EmitToRoom(room, event string, data any) {
	r.events = append(r.events, recordedEvent{Room: room, Event: event, Data: data})
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

type fakeTaskRepo struct {
	tasks       map[uuid.UUID]*models.Task
	overdue     []*models.Task
	searchCalls int
	lastView    string
}

func newFakeTaskRepo(tasks ...*models.Task) *fakeTaskRepo {
	repo := &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
	for _, task := range tasks {
		repo.tasks[task.ID] = task
	}
	return repo
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) ListByAssignee(_ context.Context, _ uuid.UUID) ([]*models.Task, error) {
	r.lastView = "assignee"
	return nil, nil
}

func (r *fakeTaskRepo) ListByCreator(_ context.Context, _ uuid.UUID) ([]*models.Task, error) {
	r.lastView = "creator"
	return nil, nil
}

func (r *fakeTaskRepo) ListOverdue(_ context.Context, _ time.Time) ([]*models.Task, error) {
	r.lastView = "overdue"
	return r.overdue, nil
}

func (r *fakeTaskRepo) List(_ context.Context) ([]*models.Task, error) {
	r.lastView = "all"
	return nil, nil
}

func (r *fakeTaskRepo) Search(_ context.Context, _ string) ([]*models.Task, error) {
	r.searchCalls++
	return []*models.Task{}, nil
}

func testUser(name, email string) *models.User {
	return &models.User{ID: uuid.New(), Name: name, Email: email}
}

func TestTaskServiceCreate(t *testing.T) {
	creator := testUser("Alice", "alice@example.com")
	assignee := testUser("Bob", "bob@example.com")
	userRepo := newFakeUserRepo(creator, assignee)
	taskRepo := newFakeTaskRepo()
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	task, err := svc.Create(context.Background(), creator.ID, &dto.CreateTaskRequest{
		Title:        "Write report",
		Priority:     "HIGH",
		AssignedToID: assignee.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.Status != models.StatusTodo {
		t.Errorf("Status = %v, expected TODO default", task.Status)
	}
	if task.CreatorID != creator.ID {
		t.Errorf("CreatorID = %v, expected %v", task.CreatorID, creator.ID)
	}

	if len(recorder.events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(recorder.events))
	}
	event := recorder.events[0]
	if event.Event != dto.EventTaskCreated {
		t.Errorf("event = %q, expected %q", event.Event, dto.EventTaskCreated)
	}
	if event.Room != ports.UserRoom(assignee.ID) {
		t.Errorf("room = %q, expected assignee room %q", event.Room, ports.UserRoom(assignee.ID))
	}
}

func TestTaskServiceCreateUnknownAssignee(t *testing.T) {
	creator := testUser("Alice", "alice@example.com")
	userRepo := newFakeUserRepo(creator)
	taskRepo := newFakeTaskRepo()
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	_, err := svc.Create(context.Background(), creator.ID, &dto.CreateTaskRequest{
		Title:        "Orphan task",
		Priority:     "LOW",
		AssignedToID: uuid.New(),
	})
	if !errors.Is(err, services.ErrAssigneeNotFound) {
		t.Fatalf("Create() error = %v, expected ErrAssigneeNotFound", err)
	}
	if len(taskRepo.tasks) != 0 {
		t.Error("task should not have been persisted")
	}
	if len(recorder.events) != 0 {
		t.Errorf("expected no events, got %d", len(recorder.events))
	}
}

func TestTaskServiceUpdateStatusChange(t *testing.T) {
	creator := testUser("Alice", "alice@example.com")
	assignee := testUser("Bob", "bob@example.com")
	userRepo := newFakeUserRepo(creator, assignee)

	task := &models.Task{
		ID:           uuid.New(),
		Title:        "Ship release",
		Priority:     models.PriorityHigh,
		Status:       models.StatusTodo,
		CreatorID:    creator.ID,
		AssignedToID: assignee.ID,
	}
	taskRepo := newFakeTaskRepo(task)
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	updated, err := svc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{Status: "IN_PROGRESS"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("Status = %v, expected IN_PROGRESS", updated.Status)
	}

	if len(recorder.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(recorder.events))
	}

	updatedEvent := recorder.events[0]
	if updatedEvent.Event != dto.EventTaskUpdated {
		t.Errorf("first event = %q, expected %q", updatedEvent.Event, dto.EventTaskUpdated)
	}
	if updatedEvent.Room != ports.UserRoom(assignee.ID) {
		t.Errorf("first event room = %q, expected assignee room", updatedEvent.Room)
	}

	statusEvent := recorder.events[1]
	if statusEvent.Event != dto.EventTaskStatusChanged {
		t.Errorf("second event = %q, expected %q", statusEvent.Event, dto.EventTaskStatusChanged)
	}
	if statusEvent.Room != ports.UserRoom(creator.ID) {
		t.Errorf("second event room = %q, expected creator room", statusEvent.Room)
	}

	payload, ok := statusEvent.Data.(dto.StatusChangedEvent)
	if !ok {
		t.Fatalf("status event payload has type %T", statusEvent.Data)
	}
	if payload.From != "TODO" || payload.To != "IN_PROGRESS" {
		t.Errorf("transition = %s -> %s, expected TODO -> IN_PROGRESS", payload.From, payload.To)
	}
	if payload.TaskID != task.ID {
		t.Errorf("TaskID = %v, expected %v", payload.TaskID, task.ID)
	}
}

func TestTaskServiceUpdateWithoutStatusChange(t *testing.T) {
	creator := testUser("Alice", "alice@example.com")
	assignee := testUser("Bob", "bob@example.com")
	userRepo := newFakeUserRepo(creator, assignee)

	task := &models.Task{
		ID:           uuid.New(),
		Title:        "Ship release",
		Status:       models.StatusTodo,
		CreatorID:    creator.ID,
		AssignedToID: assignee.ID,
	}
	taskRepo := newFakeTaskRepo(task)
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	if _, err := svc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{Title: "Ship v2"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(recorder.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(recorder.events))
	}
	if recorder.events[0].Event != dto.EventTaskUpdated {
		t.Errorf("event = %q, expected %q", recorder.events[0].Event, dto.EventTaskUpdated)
	}
}

func TestTaskServiceUpdateSameStatus(t *testing.T) {
	creator := testUser("Alice", "alice@example.com")
	assignee := testUser("Bob", "bob@example.com")
	userRepo := newFakeUserRepo(creator, assignee)

	task := &models.Task{
		ID:           uuid.New(),
		Title:        "Ship release",
		Status:       models.StatusReview,
		CreatorID:    creator.ID,
		AssignedToID: assignee.ID,
	}
	taskRepo := newFakeTaskRepo(task)
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	if _, err := svc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{Status: "REVIEW"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Setting the same status again is not a transition.
	if len(recorder.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(recorder.events))
	}
	if recorder.events[0].Event != dto.EventTaskUpdated {
		t.Errorf("event = %q, expected %q", recorder.events[0].Event, dto.EventTaskUpdated)
	}
}

func TestTaskServiceUpdateMissingTask(t *testing.T) {
	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo()
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateTaskRequest{Title: "nope"})
	if !errors.Is(err, services.ErrTaskNotFound) {
		t.Fatalf("Update() error = %v, expected ErrTaskNotFound", err)
	}
	if len(recorder.events) != 0 {
		t.Errorf("expected no events, got %d", len(recorder.events))
	}
}

func TestTaskServiceDelete(t *testing.T) {
	creator := testUser("Alice", "alice@example.com")
	assignee := testUser("Bob", "bob@example.com")
	userRepo := newFakeUserRepo(creator, assignee)

	task := &models.Task{
		ID:           uuid.New(),
		Title:        "Old task",
		CreatorID:    creator.ID,
		AssignedToID: assignee.ID,
	}
	taskRepo := newFakeTaskRepo(task)
	recorder := &notifierRecorder{}

	svc := NewTaskService(taskRepo, userRepo, recorder)

	deleted, err := svc.Delete(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != task.ID {
		t.Errorf("returned task ID = %v, expected %v", deleted.ID, task.ID)
	}
	if _, ok := taskRepo.tasks[task.ID]; ok {
		t.Error("task should have been removed from storage")
	}

	if len(recorder.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(recorder.events))
	}
	event := recorder.events[0]
	if event.Event != dto.EventTaskDeleted {
		t.Errorf("event = %q, expected %q", event.Event, dto.EventTaskDeleted)
	}
	payload, ok := event.Data.(dto.TaskDeletedEvent)
	if !ok {
		t.Fatalf("payload has type %T", event.Data)
	}
	if payload.ID != task.ID {
		t.Errorf("payload ID = %v, expected %v", payload.ID, task.ID)
	}
}

func TestTaskServiceDeleteMissingTask(t *testing.T) {
	recorder := &notifierRecorder{}
	svc := NewTaskService(newFakeTaskRepo(), newFakeUserRepo(), recorder)

	_, err := svc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, services.ErrTaskNotFound) {
		t.Fatalf("Delete() error = %v, expected ErrTaskNotFound", err)
	}
	if len(recorder.events) != 0 {
		t.Errorf("expected no events, got %d", len(recorder.events))
	}
}

func TestTaskServiceSearchBlankQuery(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, newFakeUserRepo(), &notifierRecorder{})

	for _, query := range []string{"", "   ", "\t\n"} {
		tasks, err := svc.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", query, err)
		}
		if tasks == nil || len(tasks) != 0 {
			t.Errorf("Search(%q) = %v, expected empty slice", query, tasks)
		}
	}

	if taskRepo.searchCalls != 0 {
		t.Errorf("blank queries hit storage %d times", taskRepo.searchCalls)
	}
}

func TestTaskServiceSearchTrimsQuery(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	svc := NewTaskService(taskRepo, newFakeUserRepo(), &notifierRecorder{})

	if _, err := svc.Search(context.Background(), "  report  "); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if taskRepo.searchCalls != 1 {
		t.Errorf("searchCalls = %d, expected 1", taskRepo.searchCalls)
	}
}

func TestTaskServiceListByView(t *testing.T) {
	tests := []struct {
		view     string
		expected string
	}{
		{services.ViewAssigned, "assignee"},
		{services.ViewCreated, "creator"},
		{services.ViewOverdue, "overdue"},
		{"", "all"},
		{"bogus", "all"},
	}

	for _, tt := range tests {
		t.Run("view "+tt.view, func(t *testing.T) {
			taskRepo := newFakeTaskRepo()
			svc := NewTaskService(taskRepo, newFakeUserRepo(), &notifierRecorder{})

			if _, err := svc.ListByView(context.Background(), uuid.New(), tt.view); err != nil {
				t.Fatalf("ListByView() error = %v", err)
			}
			if taskRepo.lastView != tt.expected {
				t.Errorf("dispatched to %q, expected %q", taskRepo.lastView, tt.expected)
			}
		})
	}
}

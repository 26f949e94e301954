package cli

import (
	"context"
	"sync"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// mockAPI implements the API interface for testing command handlers
type mockAPI struct {
	mu    sync.Mutex
	tasks []*domain.Task

	listCalls   int
	updateCalls int
	deleteCalls int
	createCalls int

	failList bool
	authFail bool

	lastUpdated *domain.Task
	lastCreated *domain.Task
}

func newMockAPI(tasks ...*domain.Task) *mockAPI {
	return &mockAPI{tasks: tasks}
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) Register(ctx context.Context, fullname, email, password string) (string, error) {
	return "User created successfully", nil
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	return &api.LoginResult{
		User:  domain.User{ID: "u1", FullName: "Ada Lovelace", Email: email},
		Token: "test-token",
	}, nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listCalls++
	if m.authFail {
		return nil, errors.NewAuthError("Invalid token", nil)
	}
	if m.failList {
		return nil, errors.NewNetworkError("GET /api/tasks", nil)
	}

	tasks := make([]*domain.Task, len(m.tasks))
	for i, task := range m.tasks {
		copied := *task
		tasks[i] = &copied
	}
	return tasks, nil
}

func (m *mockAPI) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range m.tasks {
		if task.ID == id {
			copied := *task
			return &copied, nil
		}
	}
	return nil, errors.NewNotFoundError("task", id)
}

func (m *mockAPI) CreateTask(ctx context.Context, task domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	copied := task
	m.lastCreated = &copied
	m.tasks = append(m.tasks, &copied)
	return nil
}

func (m *mockAPI) UpdateTask(ctx context.Context, task domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateCalls++
	copied := task
	m.lastUpdated = &copied
	for i, existing := range m.tasks {
		if existing.ID == task.ID {
			m.tasks[i] = &copied
			return nil
		}
	}
	return errors.NewNotFoundError("task", task.ID)
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteCalls++
	for i, existing := range m.tasks {
		if existing.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("task", id)
}

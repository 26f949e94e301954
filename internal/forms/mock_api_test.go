package forms

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// mockAPI implements the API interface for testing form submission, counting
// requests so tests can assert client-side gates block requests entirely
type mockAPI struct {
	registerCalls int
	loginCalls    int
	getCalls      int
	createCalls   int
	updateCalls   int

	registerErr error
	loginErr    error
	getErr      error
	createErr   error
	updateErr   error

	registerMessage string
	loginResult     *api.LoginResult
	getTask         *domain.Task

	lastCreated domain.Task
	lastUpdated domain.Task
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) Register(ctx context.Context, fullname, email, password string) (string, error) {
	m.registerCalls++
	if m.registerErr != nil {
		return "", m.registerErr
	}
	return m.registerMessage, nil
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	if m.loginResult != nil {
		return m.loginResult, nil
	}
	return &api.LoginResult{
		User:  domain.User{ID: "u1", FullName: "Test User", Email: email},
		Token: "test-token",
	}, nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return nil, nil
}

func (m *mockAPI) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.getTask != nil {
		copied := *m.getTask
		return &copied, nil
	}
	return nil, errors.NewNotFoundError("task", id)
}

func (m *mockAPI) CreateTask(ctx context.Context, task domain.Task) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreated = task
	return nil
}

func (m *mockAPI) UpdateTask(ctx context.Context, task domain.Task) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastUpdated = task
	return nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) error {
	return nil
}

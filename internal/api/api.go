package api

import (
	"context"

	"taskboard/internal/domain"
)

// API defines the interface for all remote task-management operations.
// Implementations talk to the remote HTTP store; the client never applies
// business rules of its own beyond input validation.
type API interface {
	// Account operations
	Register(ctx context.Context, fullname, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Task operations (bearer auth)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// LoginResult carries the credentials returned by a successful login.
// Success is the structured indicator: a 2xx response carrying both token
// and user. The server message is display-only.
type LoginResult struct {
	User    domain.User
	Token   string
	Message string
}

// TokenSource supplies the bearer credential attached to authenticated
// requests. An empty token means no session is stored.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, used in tests and one-off calls.
type StaticToken string

// Token returns the fixed token value.
func (t StaticToken) Token() string { return string(t) }

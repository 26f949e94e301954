package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// Client is the HTTP implementation of the API interface.
type Client struct {
	cfg    *config.Config
	http   *http.Client
	tokens TokenSource
	log    *logrus.Logger
}

// NewClient creates a new remote API client. All requests resolve against
// the single configured base URL.
func NewClient(cfg *config.Config, tokens TokenSource, log *logrus.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.API.RequestTimeout},
		tokens: tokens,
		log:    log,
	}
}

func (c *Client) baseURL() string {
	return strings.TrimRight(c.cfg.API.BaseURL, "/")
}

var _ API = (*Client)(nil)

// Register creates a new account and returns the server message
func (c *Client) Register(ctx context.Context, fullname, email, password string) (string, error) {
	body := registerRequest{FullName: fullname, Email: email, Password: password}

	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/register", body, &resp, false); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login posts credentials and returns the session on success. The request
// never attaches a stored bearer token; success is a 2xx response carrying
// both token and user, not a particular message text.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := loginRequest{Email: email, Password: password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp, false); err != nil {
		return nil, err
	}

	if resp.Token == "" || resp.User == nil {
		return nil, errors.NewRemoteError("login", http.StatusOK, resp.Message)
	}

	return &LoginResult{
		User:    fromWireUser(*resp.User),
		Token:   resp.Token,
		Message: resp.Message,
	}, nil
}

// ListTasks fetches the full task list for the logged-in user
func (c *Client) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	var resp listTasksResponse
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &resp, true); err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, len(resp.Tasks))
	for i, wire := range resp.Tasks {
		task := fromWireTask(wire)
		tasks[i] = &task
	}
	return tasks, nil
}

// GetTask fetches a single task by identifier
func (c *Client) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var resp wireTask
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &resp, true); err != nil {
		return nil, err
	}

	task := fromWireTask(resp)
	if task.ID == "" {
		task.ID = id
	}
	return &task, nil
}

// CreateTask creates a new task from its fields; the identifier is assigned
// server-side
func (c *Client) CreateTask(ctx context.Context, task domain.Task) error {
	wire := toWireTask(task)
	wire.ID = ""
	return c.do(ctx, http.MethodPost, "/api/tasks", wire, nil, true)
}

// UpdateTask replaces the full task record for the task's identifier
func (c *Client) UpdateTask(ctx context.Context, task domain.Task) error {
	if task.ID == "" {
		return errors.NewInvalidInputError("task_id", task.ID, "cannot be empty")
	}
	return c.do(ctx, http.MethodPut, "/api/tasks/"+task.ID, toWireTask(task), nil, true)
}

// DeleteTask deletes a task by identifier
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewInvalidInputError("task_id", id, "cannot be empty")
	}
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil, true)
}

// do issues one JSON request and decodes the response into out when given.
// Transport failures map to network errors; non-success statuses map to
// auth, not-found or remote errors carrying the server message if present.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	operation := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WrapError(err, errors.ErrorTypeInvalidInput, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, reader)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(operation, resp.StatusCode, payload)
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return errors.NewRemoteError(operation, resp.StatusCode, "malformed response from server")
		}
	}

	return nil
}

func (c *Client) responseError(operation string, statusCode int, payload []byte) error {
	message := serverMessage(payload)

	c.log.WithFields(logrus.Fields{
		"operation": operation,
		"status":    statusCode,
	}).Debug("remote request failed")

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errors.NewAuthError(message, nil)
	case statusCode == http.StatusNotFound:
		return errors.NewNotFoundError("resource", operation)
	default:
		return errors.NewRemoteError(operation, statusCode, message)
	}
}

// serverMessage extracts the message field from an error payload, if any
func serverMessage(payload []byte) string {
	var resp messageResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Message)
}

// Describe returns a short description of the configured endpoint for
// diagnostics output.
func (c *Client) Describe() string {
	return fmt.Sprintf("remote API at %s", c.baseURL())
}

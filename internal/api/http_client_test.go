package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewConfig()
	cfg.API.BaseURL = server.URL

	return NewClient(cfg, StaticToken(token), logging.New(false)), server
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success requires both token and user", func(t *testing.T) {
		var gotAuth string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/login", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ada@example.com", body["email"])
			assert.Equal(t, "pw", body["password"])

			writeJSON(t, w, http.StatusOK, map[string]interface{}{
				"message": "Login successful",
				"token":   "token-1",
				"user": map[string]string{
					"_id":      "u1",
					"fullname": "Ada Lovelace",
					"email":    "ada@example.com",
				},
			})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		result, err := client.Login(ctx, "ada@example.com", "pw")

		require.NoError(t, err)
		assert.Equal(t, "token-1", result.Token)
		assert.Equal(t, "u1", result.User.ID)
		assert.Equal(t, "Ada Lovelace", result.User.FullName)
		assert.Equal(t, "Login successful", result.Message)

		// Login never attaches the stored bearer token
		assert.Empty(t, gotAuth)
	})

	t.Run("2xx without a token is a failure", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Something went sideways"})
		})

		client, _ := newTestClient(t, handler, "")
		_, err := client.Login(ctx, "ada@example.com", "pw")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeRemote))
	})

	t.Run("401 surfaces the server message as an auth error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		})

		client, _ := newTestClient(t, handler, "")
		_, err := client.Login(ctx, "ada@example.com", "wrong")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAuth))
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})
}

func TestClient_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the server message", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/register", r.URL.Path)
			writeJSON(t, w, http.StatusCreated, map[string]string{"message": "User created successfully"})
		})

		client, _ := newTestClient(t, handler, "")
		message, err := client.Register(ctx, "Ada Lovelace", "ada@example.com", "pw")

		require.NoError(t, err)
		assert.Equal(t, "User created successfully", message)
	})

	t.Run("duplicate account surfaces the server message", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"message": "User already exists"})
		})

		client, _ := newTestClient(t, handler, "")
		_, err := client.Register(ctx, "Ada Lovelace", "ada@example.com", "pw")

		require.Error(t, err)
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "User already exists", appErr.Message)
	})
}

func TestClient_ListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the bearer token and unwraps the envelope", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/tasks", r.URL.Path)
			assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			writeJSON(t, w, http.StatusOK, map[string]interface{}{
				"tasks": []map[string]string{
					{"_id": "t1", "title": "a", "status": "To-Do", "priority": "Low"},
					{"_id": "t2", "title": "b", "status": "In Progress", "priority": "Urgent"},
				},
			})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		tasks, err := client.ListTasks(ctx)

		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "t1", tasks[0].ID)
		assert.Equal(t, domain.StatusToDo, tasks[0].Status)
		assert.Equal(t, "t2", tasks[1].ID)
		assert.Equal(t, domain.PriorityUrgent, tasks[1].Priority)
	})

	t.Run("missing priority falls back to the default", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]interface{}{
				"tasks": []map[string]string{
					{"_id": "t1", "title": "a", "status": "To-Do"},
				},
			})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		tasks, err := client.ListTasks(ctx)

		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, domain.DefaultPriority, tasks[0].Priority)
	})

	t.Run("expired token is an auth error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusForbidden, map[string]string{"message": "Invalid token"})
		})

		client, _ := newTestClient(t, handler, "stale-token")
		_, err := client.ListTasks(ctx)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAuth))
	})

	t.Run("unreachable server is a network error", func(t *testing.T) {
		client, server := newTestClient(t, http.NotFoundHandler(), "")
		server.Close()

		_, err := client.ListTasks(ctx)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNetwork))
	})
}

func TestClient_TaskMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("update puts the full task to its path", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]interface{}
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Task updated"})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		deadline := domain.DateOnly(mustParseDate(t, "2024-01-31"))
		err := client.UpdateTask(ctx, domain.Task{
			ID:       "t1",
			Title:    "Write the report",
			Status:   domain.StatusUnderReview,
			Priority: domain.PriorityMedium,
			Deadline: &deadline,
		})

		require.NoError(t, err)
		assert.Equal(t, "/api/tasks/t1", gotPath)
		assert.Equal(t, "Write the report", gotBody["title"])
		assert.Equal(t, "Under Review", gotBody["status"])
		assert.Equal(t, "Medium", gotBody["priority"])
		assert.Equal(t, "2024-01-31", gotBody["deadline"])
	})

	t.Run("update without an identifier is rejected locally", func(t *testing.T) {
		requests := 0
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		})

		client, _ := newTestClient(t, handler, "stored-token")
		err := client.UpdateTask(ctx, domain.Task{Title: "a", Status: domain.StatusToDo})

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
		assert.Equal(t, 0, requests)
	})

	t.Run("create never sends an identifier", func(t *testing.T) {
		var gotBody map[string]interface{}
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/tasks", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeJSON(t, w, http.StatusCreated, map[string]string{"message": "Task created"})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		err := client.CreateTask(ctx, domain.Task{
			ID:       "ignored",
			Title:    "Write the report",
			Status:   domain.StatusToDo,
			Priority: domain.PriorityLow,
		})

		require.NoError(t, err)
		_, hasID := gotBody["_id"]
		assert.False(t, hasID)
	})

	t.Run("delete targets the task path", func(t *testing.T) {
		var gotPath string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			gotPath = r.URL.Path
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Task deleted"})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		require.NoError(t, client.DeleteTask(ctx, "t1"))
		assert.Equal(t, "/api/tasks/t1", gotPath)
	})

	t.Run("missing task is a not-found error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Task not found"})
		})

		client, _ := newTestClient(t, handler, "stored-token")
		_, err := client.GetTask(ctx, "missing")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

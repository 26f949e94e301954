package api

import (
	"time"

	"taskboard/internal/domain"
)

// Wire formats follow the remote store's JSON contract. Task identifiers
// travel as "_id"; deadlines are sent at day precision and may come back as
// full timestamps.

type wireTask struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline,omitempty"`
}

type wireUser struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

type listTasksResponse struct {
	Tasks []wireTask `json:"tasks"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    *wireUser `json:"user"`
}

type registerRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

const wireDeadlineFormat = "2006-01-02"

func toWireTask(task domain.Task) wireTask {
	wire := wireTask{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
	}
	if task.Deadline != nil {
		wire.Deadline = task.Deadline.Format(wireDeadlineFormat)
	}
	return wire
}

func fromWireTask(wire wireTask) domain.Task {
	task := domain.Task{
		ID:          wire.ID,
		Title:       wire.Title,
		Description: wire.Description,
		Status:      domain.Status(wire.Status),
		Priority:    domain.Priority(wire.Priority),
	}
	if task.Priority == "" {
		task.Priority = domain.DefaultPriority
	}
	if wire.Deadline != "" {
		if t, ok := parseWireDeadline(wire.Deadline); ok {
			task.Deadline = &t
		}
	}
	return task
}

// parseWireDeadline accepts both plain dates and full timestamps and
// discards the time-of-day.
func parseWireDeadline(s string) (time.Time, bool) {
	if t, err := time.Parse(wireDeadlineFormat, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return domain.DateOnly(t), true
	}
	return time.Time{}, false
}

func fromWireUser(wire wireUser) domain.User {
	return domain.User{
		ID:       wire.ID,
		FullName: wire.FullName,
		Email:    wire.Email,
	}
}

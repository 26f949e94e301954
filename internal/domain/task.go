package domain

import (
	"strings"
	"time"
)

// Status represents the board column a task belongs to.
type Status string

const (
	StatusToDo        Status = "To-Do"
	StatusInProgress  Status = "In Progress"
	StatusUnderReview Status = "Under Review"
	StatusCompleted   Status = "Completed"
)

// Statuses returns all statuses in board column order.
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusUnderReview, StatusCompleted}
}

// IsValid checks if the status is one of the four board columns.
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

// String returns the status as displayed on the board.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a status from user input. Matching ignores case,
// spaces and hyphens, so "todo", "To-Do" and "in progress" all resolve.
func ParseStatus(s string) (Status, bool) {
	switch normalizeEnum(s) {
	case "todo":
		return StatusToDo, true
	case "inprogress":
		return StatusInProgress, true
	case "underreview":
		return StatusUnderReview, true
	case "completed":
		return StatusCompleted, true
	}
	return "", false
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityUrgent Priority = "Urgent"
)

// DefaultPriority is applied when a task is created without an explicit
// priority.
const DefaultPriority = PriorityLow

// Priorities returns all priorities from least to most urgent.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityUrgent}
}

// IsValid checks if the priority is a known level.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityUrgent:
		return true
	}
	return false
}

// String returns the priority as displayed on the board.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority parses a priority from user input, ignoring case.
func ParsePriority(s string) (Priority, bool) {
	switch normalizeEnum(s) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "urgent":
		return PriorityUrgent, true
	}
	return "", false
}

func normalizeEnum(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Task represents a task in the domain model.
// The ID is assigned by the remote store at creation time and is immutable.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Deadline    *time.Time // day precision, time-of-day discarded
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Status.IsValid()
}

// WithStatus returns a full copy of the task with a new status. All other
// fields are unchanged.
func (t Task) WithStatus(status Status) Task {
	t.Status = status
	return t
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// DateOnly truncates a timestamp to day precision.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

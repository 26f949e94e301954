package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Status
		ok       bool
	}{
		{"exact match", "To-Do", StatusToDo, true},
		{"lowercase", "to-do", StatusToDo, true},
		{"without hyphen", "todo", StatusToDo, true},
		{"with spaces", "in progress", StatusInProgress, true},
		{"underscored", "under_review", StatusUnderReview, true},
		{"completed", "Completed", StatusCompleted, true},
		{"unknown", "Done", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := ParseStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		ok       bool
	}{
		{"low", "Low", PriorityLow, true},
		{"medium lowercase", "medium", PriorityMedium, true},
		{"urgent", "URGENT", PriorityUrgent, true},
		{"unknown", "High", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, ok := ParsePriority(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, priority)
			}
		})
	}
}

func TestStatuses_OrderAndCount(t *testing.T) {
	statuses := Statuses()

	require.Len(t, statuses, 4)
	assert.Equal(t, []Status{StatusToDo, StatusInProgress, StatusUnderReview, StatusCompleted}, statuses)
}

func TestTask_WithStatus(t *testing.T) {
	deadline := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	task := &Task{
		ID:          "t1",
		Title:       "Write the report",
		Description: "quarterly numbers",
		Status:      StatusToDo,
		Priority:    PriorityMedium,
		Deadline:    &deadline,
	}

	updated := task.WithStatus(StatusCompleted)

	// Full copy with only the status changed
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, task.ID, updated.ID)
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Description, updated.Description)
	assert.Equal(t, task.Priority, updated.Priority)
	assert.Equal(t, task.Deadline, updated.Deadline)

	// Original is untouched
	assert.Equal(t, StatusToDo, task.Status)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		task  Task
		valid bool
	}{
		{"valid", Task{Title: "a", Status: StatusToDo, Priority: PriorityLow}, true},
		{"missing title", Task{Status: StatusToDo, Priority: PriorityLow}, false},
		{"unknown status", Task{Title: "a", Status: "Done", Priority: PriorityLow}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.task.IsValid())
		})
	}
}

func TestDateOnly(t *testing.T) {
	input := time.Date(2024, 1, 31, 15, 42, 7, 123, time.FixedZone("X", 3600))
	got := DateOnly(input)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got)
}

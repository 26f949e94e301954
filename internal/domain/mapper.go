package domain

import (
	"taskboard/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and storage Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToStorage converts a domain Task to a cached storage Task.
func (m *TaskMapper) ToStorage(task Task, position int) sqlite.Task {
	return sqlite.Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Deadline:    task.Deadline,
		Position:    position,
	}
}

// FromStorage converts a cached storage Task to a domain Task.
func (m *TaskMapper) FromStorage(stored sqlite.Task) Task {
	return Task{
		ID:          stored.ID,
		Title:       stored.Title,
		Description: stored.Description,
		Status:      Status(stored.Status),
		Priority:    Priority(stored.Priority),
		Deadline:    stored.Deadline,
	}
}

// ToStorageSlice converts a slice of domain Tasks to storage Tasks,
// assigning positions from list order.
func (m *TaskMapper) ToStorageSlice(tasks []*Task) []*sqlite.Task {
	stored := make([]*sqlite.Task, len(tasks))
	for i, task := range tasks {
		s := m.ToStorage(*task, i)
		stored[i] = &s
	}
	return stored
}

// FromStorageSlice converts a slice of storage Tasks to domain Tasks.
func (m *TaskMapper) FromStorageSlice(stored []*sqlite.Task) []*Task {
	tasks := make([]*Task, len(stored))
	for i, s := range stored {
		task := m.FromStorage(*s)
		tasks[i] = &task
	}
	return tasks
}

// SessionMapper handles conversion between domain and storage Session models.
type SessionMapper struct{}

// NewSessionMapper creates a new SessionMapper instance.
func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToStorage converts a domain Session to a storage Session.
func (m *SessionMapper) ToStorage(session Session) sqlite.Session {
	return sqlite.Session{
		Token:     session.Token,
		UserID:    session.User.ID,
		FullName:  session.User.FullName,
		Email:     session.User.Email,
		CreatedAt: session.CreatedAt,
	}
}

// FromStorage converts a storage Session to a domain Session.
func (m *SessionMapper) FromStorage(stored sqlite.Session) Session {
	return Session{
		Token: stored.Token,
		User: User{
			ID:       stored.UserID,
			FullName: stored.FullName,
			Email:    stored.Email,
		},
		CreatedAt: stored.CreatedAt,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task    *TaskMapper
	Session *SessionMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:    NewTaskMapper(),
		Session: NewSessionMapper(),
	}
}

package sqlite

import "time"

// Session is the persisted client-side session record. At most one row
// exists at a time; token and user are stored and cleared together.
type Session struct {
	Token     string
	UserID    string
	FullName  string
	Email     string
	CreatedAt time.Time
}

// Task is the locally cached copy of a remote task. Position preserves the
// order of the authoritative list from the last successful fetch.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    string
	Deadline    *time.Time
	Position    int
}

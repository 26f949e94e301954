package sqlite

import (
	"database/sql"

	"taskboard/internal/errors"
	"taskboard/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for client-local persisted state:
// the session record and the cached board snapshot.
type Repository interface {
	// Session operations
	SaveSession(session *Session) error
	GetSession() (*Session, error)
	ClearSession() error

	// Cached task operations
	ReplaceTasks(tasks []*Task) error
	ListTasks() ([]*Task, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveSession stores the session record, replacing any previous one
func (r *SQLiteRepository) SaveSession(session *Session) error {
	query := `
	INSERT INTO session (id, token, user_id, fullname, email, created_at)
	VALUES (1, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		token = excluded.token,
		user_id = excluded.user_id,
		fullname = excluded.fullname,
		email = excluded.email,
		created_at = excluded.created_at`

	return Execute(r.db, query,
		session.Token, session.UserID, session.FullName, session.Email,
		FormatTimeForDB(session.CreatedAt))
}

// GetSession retrieves the persisted session, or a not-found error when no
// session is stored
func (r *SQLiteRepository) GetSession() (*Session, error) {
	query := `
	SELECT token, user_id, fullname, email, created_at
	FROM session
	WHERE id = 1`

	return QuerySingle(r.db, query, ScanSession, "session", "current")
}

// ClearSession removes the persisted session. Clearing an absent session is
// not an error.
func (r *SQLiteRepository) ClearSession() error {
	return Execute(r.db, `DELETE FROM session`)
}

// ReplaceTasks replaces the cached board snapshot with the given list,
// preserving list order through the position column
func (r *SQLiteRepository) ReplaceTasks(tasks []*Task) error {
	tx, err := r.db.Begin()
	if err != nil {
		return HandleStorageError("begin transaction", err)
	}

	if _, err := tx.Exec(`DELETE FROM task_cache`); err != nil {
		tx.Rollback()
		return HandleStorageError("clear task cache", err)
	}

	query := `
	INSERT INTO task_cache (id, title, description, status, priority, deadline, position)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	for i, task := range tasks {
		_, err := tx.Exec(query,
			task.ID, task.Title, task.Description, task.Status, task.Priority,
			FormatTimePtrForDB(task.Deadline), i)
		if err != nil {
			tx.Rollback()
			return HandleStorageError("insert cached task", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleStorageError("commit task cache", err)
	}
	return nil
}

// ListTasks retrieves the cached board snapshot in list order
func (r *SQLiteRepository) ListTasks() ([]*Task, error) {
	query := `
	SELECT id, title, description, status, priority, deadline, position
	FROM task_cache
	ORDER BY position ASC`

	return QueryMultiple(r.db, query, ScanTasks, "cached tasks")
}

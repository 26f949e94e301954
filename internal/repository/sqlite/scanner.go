package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSession scans the persisted session from a database row
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}
	var createdAt string

	err := scanner.Scan(
		&session.Token,
		&session.UserID,
		&session.FullName,
		&session.Email,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t, err := ParseTimeFromDB(createdAt); err == nil {
		session.CreatedAt = t
	}

	return session, nil
}

// ScanTask scans a single cached task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var deadline sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&deadline,
		&task.Position,
	)
	if err != nil {
		return nil, err
	}

	if deadline.Valid {
		if t, err := ParseTimeFromDB(deadline.String); err == nil {
			task.Deadline = &t
		}
	}

	return task, nil
}

// ScanTasks scans multiple cached tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

package sqlite

import (
	"database/sql"

	"taskboard/internal/errors"
)

// HandleStorageError converts database errors to structured app errors
func HandleStorageError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// HandleNoRowsError handles sql.ErrNoRows errors consistently
func HandleNoRowsError(err error, entityType string, id string) error {
	if err == sql.ErrNoRows {
		return errors.NewNotFoundError(entityType, id)
	}
	return err
}

// ValidateRowsAffected checks if a database operation affected the expected number of rows
func ValidateRowsAffected(result sql.Result, entityType string, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleStorageError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError(entityType, id)
	}
	return nil
}

// Execute executes a statement and converts failures to storage errors
func Execute(db *sql.DB, query string, args ...interface{}) error {
	if _, err := db.Exec(query, args...); err != nil {
		return HandleStorageError("execute query", err)
	}
	return nil
}

// ExecuteWithRowsAffected executes a query and validates that rows were affected
func ExecuteWithRowsAffected(db *sql.DB, query string, entityType string, id string, args ...interface{}) error {
	result, err := db.Exec(query, args...)
	if err != nil {
		return HandleStorageError("execute query", err)
	}

	return ValidateRowsAffected(result, entityType, id)
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := db.QueryRow(query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleStorageError("scan "+entityType, err)
	}
	return result, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, HandleStorageError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleStorageError("scan "+entityType, err)
	}
	return results, nil
}

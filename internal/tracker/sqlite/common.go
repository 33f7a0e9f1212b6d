package sqlite

import (
	"context"
	"database/sql"

	"timereport/internal/errors"
)

// Scanner abstracts sql.Row and sql.Rows for single-row scan functions
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows abstracts sql.Rows for multi-row scan functions
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleDatabaseError("execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError("get last insert ID", err)
	}

	return id, nil
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError(entityType, id)
		}
		return nil, HandleDatabaseError("scan "+entityType, err)
	}
	return result, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]T, error), entityType string, args ...interface{}) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan "+entityType, err)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("iterate "+entityType, err)
	}
	return results, nil
}

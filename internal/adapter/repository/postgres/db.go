package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq" // PostgreSQL driver

	"github.com/simaogato/lifedash-backend/internal/domain"
)

//go:embed schema.sql
var schema string

// foreignKeyViolation is the SQLSTATE raised when a referenced row is missing
const foreignKeyViolation = "23503"

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=lifedash sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Connect retries NewDB until the database answers or attempts run out
func Connect(ctx context.Context, connectionString string, attempts int, wait time.Duration) (*DB, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		db, err := NewDB(connectionString)
		if err == nil {
			return db, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

// Migrate creates every table that does not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Repositories returns every repository backed by this database
func (db *DB) Repositories() domain.Repositories {
	return domain.Repositories{
		Tasks:       NewTaskRepository(db),
		Journal:     NewJournalRepository(db),
		Workouts:    NewWorkoutRepository(db),
		Holdings:    NewHoldingRepository(db),
		Watchlist:   NewWatchlistRepository(db),
		Goals:       NewGoalRepository(db),
		Diet:        NewDietRepository(db),
		Supplements: NewSupplementRepository(db),
		Weights:     NewWeightRepository(db),
		Groceries:   NewGroceryRepository(db),
		Ideas:       NewIdeaRepository(db),
		Quotes:      NewQuoteRepository(db),
	}
}

// scanner is implemented by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// nullString converts a nullable column into an optional field
func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// nullTime converts a nullable column into an optional field
func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}

// nonNil keeps empty arrays from being written as NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// limitArg turns a non-positive limit into NULL, which Postgres reads as no limit
func limitArg(limit int) interface{} {
	if limit <= 0 {
		return nil
	}
	return limit
}

// expectAffected returns a not found error when the statement touched no row
func expectAffected(res sql.Result, entity string, id fmt.Stringer) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.NotFound(entity, id)
	}
	return nil
}

// notFound maps sql.ErrNoRows to domain.ErrNotFound and wraps anything else
func notFound(err error, entity string, id fmt.Stringer, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(entity, id)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// isForeignKeyViolation reports whether err is a missing-reference error
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// collect scans every row with scan
func collect[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return out, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// journalRepository implements domain.JournalRepository
type journalRepository struct {
	db *DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *DB) domain.JournalRepository {
	return &journalRepository{db: db}
}

const journalColumns = `id, content, tags, mood, created_at, updated_at`

func scanJournalEntry(row scanner) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var mood sql.NullString

	if err := row.Scan(
		&entry.ID,
		&entry.Content,
		pq.Array(&entry.Tags),
		&mood,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	entry.Mood = nullString(mood)
	entry.Tags = nonNil(entry.Tags)

	return &entry, nil
}

// List retrieves entries newest first. A non-empty search matches the content
// case-insensitively or a tag exactly.
func (r *journalRepository) List(ctx context.Context, search string) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE strpos(lower(content), lower($1)) > 0 OR $1 = ANY(tags)`
		args = append(args, search)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return collect(rows, scanJournalEntry)
}

// ListRecent retrieves at most limit entries, newest first
func (r *journalRepository) ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries ORDER BY created_at DESC, id LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent journal entries: %w", err)
	}
	return collect(rows, scanJournalEntry)
}

// CountSince counts entries created at or after since
func (r *journalRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM journal_entries WHERE created_at >= $1`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// GetByID retrieves an entry by its ID
func (r *journalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = $1`

	entry, err := scanJournalEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "journal entry", id, "get journal entry by ID")
	}
	return entry, nil
}

// Create creates a new entry
func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Content,
		pq.Array(nonNil(entry.Tags)),
		entry.Mood,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}

// Update overwrites content, tags and mood. created_at is never changed.
func (r *journalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET content = $2, tags = $3, mood = $4, updated_at = $5
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Content,
		pq.Array(nonNil(entry.Tags)),
		entry.Mood,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	return expectAffected(res, "journal entry", entry.ID)
}

// Delete removes an entry
func (r *journalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return expectAffected(res, "journal entry", id)
}

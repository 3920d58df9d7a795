package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// quoteRepository implements domain.QuoteRepository
type quoteRepository struct {
	db *DB
}

// NewQuoteRepository creates a new daily quote repository
func NewQuoteRepository(db *DB) domain.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `id, date, quote, author, source, created_at`

func scanQuote(row scanner) (*domain.DailyQuote, error) {
	var q domain.DailyQuote
	var author, source sql.NullString

	if err := row.Scan(&q.ID, &q.Date, &q.Quote, &author, &source, &q.CreatedAt); err != nil {
		return nil, err
	}
	q.Author = nullString(author)
	q.Source = nullString(source)
	return &q, nil
}

// GetByDate retrieves the quote of the given day
func (r *quoteRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyQuote, error) {
	q, err := scanQuote(r.db.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM daily_quotes WHERE date = $1`, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("daily quote", date)
		}
		return nil, fmt.Errorf("failed to get daily quote: %w", err)
	}
	return q, nil
}

// List retrieves every stored quote, newest day first
func (r *quoteRepository) List(ctx context.Context) ([]*domain.DailyQuote, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+quoteColumns+` FROM daily_quotes ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily quotes: %w", err)
	}
	return collect(rows, scanQuote)
}

// Upsert inserts the quote or overwrites the quote of the same day
func (r *quoteRepository) Upsert(ctx context.Context, q *domain.DailyQuote) error {
	query := `
		INSERT INTO daily_quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO UPDATE SET quote = EXCLUDED.quote, author = EXCLUDED.author, source = EXCLUDED.source
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, q.ID, q.Date, q.Quote, q.Author, q.Source, q.CreatedAt).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert daily quote: %w", err)
	}
	return nil
}

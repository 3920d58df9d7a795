package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

const holdingColumns = `id, symbol, shares, avg_cost, current_price, notes, created_at, updated_at`

func scanHolding(row scanner) (*domain.Holding, error) {
	var h domain.Holding
	var sharesStr, avgCostStr string
	var price sql.NullString
	var notes sql.NullString

	if err := row.Scan(&h.ID, &h.Symbol, &sharesStr, &avgCostStr, &price, &notes, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}

	// Parse shares and avg_cost (DECIMAL)
	shares, err := decimal.NewFromString(sharesStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shares: %w", err)
	}
	avgCost, err := decimal.NewFromString(avgCostStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse avg_cost: %w", err)
	}
	h.Shares = shares
	h.AvgCost = avgCost

	// Parse current_price (nullable DECIMAL)
	if price.Valid {
		p, err := decimal.NewFromString(price.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse current_price: %w", err)
		}
		h.CurrentPrice = &p
	}
	h.Notes = nullString(notes)

	return &h, nil
}

// decimalArg writes an optional decimal as NULL or its exact string form
func decimalArg(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

// List retrieves all holdings sorted by symbol
func (r *holdingRepository) List(ctx context.Context) ([]*domain.Holding, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+holdingColumns+` FROM holdings ORDER BY symbol, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return collect(rows, scanHolding)
}

// GetByID retrieves a holding by its ID
func (r *holdingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	h, err := scanHolding(r.db.QueryRowContext(ctx, `SELECT `+holdingColumns+` FROM holdings WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "holding", id, "get holding by ID")
	}
	return h, nil
}

// Create creates a new holding
func (r *holdingRepository) Create(ctx context.Context, h *domain.Holding) error {
	query := `
		INSERT INTO holdings (` + holdingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Symbol,
		h.Shares.String(),
		h.AvgCost.String(),
		decimalArg(h.CurrentPrice),
		h.Notes,
		h.CreatedAt,
		h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the holding
func (r *holdingRepository) Update(ctx context.Context, h *domain.Holding) error {
	query := `
		UPDATE holdings
		SET symbol = $2, shares = $3, avg_cost = $4, current_price = $5, notes = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Symbol,
		h.Shares.String(),
		h.AvgCost.String(),
		decimalArg(h.CurrentPrice),
		h.Notes,
		h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	return expectAffected(res, "holding", h.ID)
}

// Delete removes a holding
func (r *holdingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holdings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return expectAffected(res, "holding", id)
}

// watchlistRepository implements domain.WatchlistRepository
type watchlistRepository struct {
	db *DB
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *DB) domain.WatchlistRepository {
	return &watchlistRepository{db: db}
}

const watchlistColumns = `id, symbol, notes, created_at`

func scanWatchlistItem(row scanner) (*domain.WatchlistItem, error) {
	var item domain.WatchlistItem
	var notes sql.NullString

	if err := row.Scan(&item.ID, &item.Symbol, &notes, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Notes = nullString(notes)
	return &item, nil
}

// List retrieves all items, newest first
func (r *watchlistRepository) List(ctx context.Context) ([]*domain.WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+watchlistColumns+` FROM watchlist_items ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return collect(rows, scanWatchlistItem)
}

// GetByID retrieves an item by its ID
func (r *watchlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WatchlistItem, error) {
	item, err := scanWatchlistItem(r.db.QueryRowContext(ctx,
		`SELECT `+watchlistColumns+` FROM watchlist_items WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "watchlist item", id, "get watchlist item by ID")
	}
	return item, nil
}

// Create creates a new item
func (r *watchlistRepository) Create(ctx context.Context, item *domain.WatchlistItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO watchlist_items (`+watchlistColumns+`) VALUES ($1, $2, $3, $4)`,
		item.ID, item.Symbol, item.Notes, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create watchlist item: %w", err)
	}
	return nil
}

// Update overwrites the symbol and notes of the item
func (r *watchlistRepository) Update(ctx context.Context, item *domain.WatchlistItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE watchlist_items SET symbol = $2, notes = $3 WHERE id = $1`,
		item.ID, item.Symbol, item.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update watchlist item: %w", err)
	}
	return expectAffected(res, "watchlist item", item.ID)
}

// Delete removes an item
func (r *watchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}
	return expectAffected(res, "watchlist item", id)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// groceryRepository implements domain.GroceryRepository
type groceryRepository struct {
	db *DB
}

// NewGroceryRepository creates a new grocery repository
func NewGroceryRepository(db *DB) domain.GroceryRepository {
	return &groceryRepository{db: db}
}

const groceryColumns = `id, name, category, is_checked, created_at, updated_at`

func scanGroceryItem(row scanner) (*domain.GroceryItem, error) {
	var item domain.GroceryItem
	var category sql.NullString

	if err := row.Scan(&item.ID, &item.Name, &category, &item.IsChecked, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.Category = nullString(category)
	return &item, nil
}

// List retrieves items, unchecked first, then by category, then newest first
func (r *groceryRepository) List(ctx context.Context) ([]*domain.GroceryItem, error) {
	query := `
		SELECT ` + groceryColumns + `
		FROM grocery_items
		ORDER BY is_checked, category COLLATE "C" ASC NULLS LAST, created_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	return collect(rows, scanGroceryItem)
}

// GetByID retrieves an item by its ID
func (r *groceryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GroceryItem, error) {
	item, err := scanGroceryItem(r.db.QueryRowContext(ctx,
		`SELECT `+groceryColumns+` FROM grocery_items WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "grocery item", id, "get grocery item by ID")
	}
	return item, nil
}

// Create creates a new item
func (r *groceryRepository) Create(ctx context.Context, item *domain.GroceryItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO grocery_items (`+groceryColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Name, item.Category, item.IsChecked, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create grocery item: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the item
func (r *groceryRepository) Update(ctx context.Context, item *domain.GroceryItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE grocery_items SET name = $2, category = $3, is_checked = $4, updated_at = $5 WHERE id = $1`,
		item.ID, item.Name, item.Category, item.IsChecked, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update grocery item: %w", err)
	}
	return expectAffected(res, "grocery item", item.ID)
}

// Delete removes an item
func (r *groceryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grocery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}
	return expectAffected(res, "grocery item", id)
}

// DeleteChecked removes every checked item and returns how many were removed
func (r *groceryRepository) DeleteChecked(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grocery_items WHERE is_checked`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear checked grocery items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(n), nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// GroceryItem is an entry on the shopping list
type GroceryItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	IsChecked bool      `json:"isChecked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate ensures the grocery item adheres to domain rules
func (g *GroceryItem) Validate() error {
	if err := checkLength("name", g.Name, 1, 200); err != nil {
		return err
	}
	return checkOptional("category", g.Category, 50)
}

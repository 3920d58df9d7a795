package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyQuote is the quote chosen for one calendar day (unique per day)
type DailyQuote struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Quote     string    `json:"quote"`
	Author    *string   `json:"author"`
	Source    *string   `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate ensures the quote adheres to domain rules
func (q *DailyQuote) Validate() error {
	if err := checkLength("quote", q.Quote, 1, 2000); err != nil {
		return err
	}
	if err := checkOptional("author", q.Author, 200); err != nil {
		return err
	}
	return checkOptional("source", q.Source, 200)
}

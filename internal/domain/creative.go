package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreativeIdea is a free-form idea that can be pinned to the top of the list
type CreativeIdea struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate ensures the idea adheres to domain rules
func (c *CreativeIdea) Validate() error {
	if err := checkLength("title", c.Title, 1, 200); err != nil {
		return err
	}
	if err := checkOptional("content", c.Content, 5000); err != nil {
		return err
	}
	if err := checkOptional("category", c.Category, 50); err != nil {
		return err
	}
	if len(c.Tags) > 10 {
		return invalid("at most 10 tags are allowed")
	}
	for _, tag := range c.Tags {
		if err := checkLength("tag", tag, 1, 50); err != nil {
			return err
		}
	}
	return nil
}

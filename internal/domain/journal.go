package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Moods offered by the journal editor. Mood is free text, these are suggestions.
var Moods = []string{"great", "good", "okay", "low", "bad"}

// JournalEntry is a free-text journal entry.
// CreatedAt never changes after creation and drives the journal streak.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Mood      *string   `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate ensures the journal entry adheres to domain rules
func (e *JournalEntry) Validate() error {
	if err := checkLength("content", e.Content, 1, 50000); err != nil {
		return err
	}
	if len(e.Tags) > 10 {
		return invalid("at most 10 tags are allowed")
	}
	for _, tag := range e.Tags {
		if err := checkLength("tag", tag, 1, 50); err != nil {
			return err
		}
	}
	return checkOptional("mood", e.Mood, 50)
}

// NormalizeTags trims tags, drops empty ones and removes duplicates,
// keeping the first occurrence.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// HasTag reports whether the entry carries the given tag (exact match)
func (e *JournalEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

package memory

import (
	"cmp"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// JournalRepository implements domain.JournalRepository
type JournalRepository struct{ s *Store }

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Tags = cloneStrings(e.Tags)
	return e
}

func newestEntryFirst(a, b *domain.JournalEntry) int {
	return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareID(a.ID, b.ID))
}

// List retrieves entries newest first, optionally filtered by search
func (r *JournalRepository) List(_ context.Context, search string) ([]*domain.JournalEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := values(r.s.journal, cloneEntry, newestEntryFirst)
	if search == "" {
		return all, nil
	}

	needle := strings.ToLower(search)
	out := make([]*domain.JournalEntry, 0, len(all))
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Content), needle) || e.HasTag(search) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListRecent retrieves at most limit entries, newest first
func (r *JournalRepository) ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	all, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// CountSince counts entries created at or after since
func (r *JournalRepository) CountSince(_ context.Context, since time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, e := range r.s.journal {
		if !e.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *JournalRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entry, ok := r.s.journal[id]
	if !ok {
		return nil, domain.NotFound("journal entry", id)
	}
	entry = cloneEntry(entry)
	return &entry, nil
}

func (r *JournalRepository) Create(_ context.Context, entry *domain.JournalEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.journal[entry.ID] = cloneEntry(*entry)
	return nil
}

func (r *JournalRepository) Update(_ context.Context, entry *domain.JournalEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.journal[entry.ID]; !ok {
		return domain.NotFound("journal entry", entry.ID)
	}
	r.s.journal[entry.ID] = cloneEntry(*entry)
	return nil
}

func (r *JournalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.journal[id]; !ok {
		return domain.NotFound("journal entry", id)
	}
	delete(r.s.journal, id)
	return nil
}

// Package memory implements every domain repository in process memory.
// It backs STORE=memory deployments and service tests.
package memory

import (
	"bytes"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// Store holds every record behind a single lock
type Store struct {
	mu sync.RWMutex

	tasks       map[uuid.UUID]domain.Task
	journal     map[uuid.UUID]domain.JournalEntry
	templates   map[uuid.UUID]domain.WorkoutTemplate
	exercises   map[uuid.UUID]domain.TemplateExercise
	logs        []domain.ExerciseLog // insertion order
	holdings    map[uuid.UUID]domain.Holding
	watchlist   map[uuid.UUID]domain.WatchlistItem
	goals       map[uuid.UUID]domain.Goal
	dietLogs    map[time.Time]domain.DietLog
	dietGoals   *domain.DietGoals
	supplements map[uuid.UUID]domain.Supplement
	weights     map[time.Time]domain.WeightLog
	groceries   map[uuid.UUID]domain.GroceryItem
	ideas       map[uuid.UUID]domain.CreativeIdea
	quotes      map[time.Time]domain.DailyQuote
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		tasks:       make(map[uuid.UUID]domain.Task),
		journal:     make(map[uuid.UUID]domain.JournalEntry),
		templates:   make(map[uuid.UUID]domain.WorkoutTemplate),
		exercises:   make(map[uuid.UUID]domain.TemplateExercise),
		holdings:    make(map[uuid.UUID]domain.Holding),
		watchlist:   make(map[uuid.UUID]domain.WatchlistItem),
		goals:       make(map[uuid.UUID]domain.Goal),
		dietLogs:    make(map[time.Time]domain.DietLog),
		supplements: make(map[uuid.UUID]domain.Supplement),
		weights:     make(map[time.Time]domain.WeightLog),
		groceries:   make(map[uuid.UUID]domain.GroceryItem),
		ideas:       make(map[uuid.UUID]domain.CreativeIdea),
		quotes:      make(map[time.Time]domain.DailyQuote),
	}
}

// Repositories returns every repository backed by this store
func (s *Store) Repositories() domain.Repositories {
	return domain.Repositories{
		Tasks:       &TaskRepository{s},
		Journal:     &JournalRepository{s},
		Workouts:    &WorkoutRepository{s},
		Holdings:    &HoldingRepository{s},
		Watchlist:   &WatchlistRepository{s},
		Goals:       &GoalRepository{s},
		Diet:        &DietRepository{s},
		Supplements: &SupplementRepository{s},
		Weights:     &WeightRepository{s},
		Groceries:   &GroceryRepository{s},
		Ideas:       &IdeaRepository{s},
		Quotes:      &QuoteRepository{s},
	}
}

// dayKey normalises a stored date so map keys compare by instant
func dayKey(t time.Time) time.Time {
	return t.UTC()
}

// values returns the map values as pointers to copies, sorted by order.
// Orders end with compareID so that results do not depend on map iteration.
func values[K comparable, V any](m map[K]V, clone func(V) V, order func(a, b *V) int) []*V {
	out := make([]*V, 0, len(m))
	for _, v := range m {
		c := clone(v)
		out = append(out, &c)
	}
	slices.SortFunc(out, order)
	return out
}

func compareID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func same[V any](v V) V { return v }

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}

// compareBool orders true before false
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

// compareOptional orders nil values last
func compareOptional(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

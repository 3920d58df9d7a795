package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskRepository defines the interface for task persistence operations
type TaskRepository interface {
	// List retrieves all tasks, newest first
	List(ctx context.Context) ([]*Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	Create(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JournalRepository defines the interface for journal persistence operations
type JournalRepository interface {
	// List retrieves entries newest first. A non-empty search matches the
	// content case-insensitively or a tag exactly.
	List(ctx context.Context, search string) ([]*JournalEntry, error)

	// ListRecent retrieves at most limit entries, newest first
	ListRecent(ctx context.Context, limit int) ([]*JournalEntry, error)

	// CountSince counts entries created at or after since
	CountSince(ctx context.Context, since time.Time) (int, error)

	GetByID(ctx context.Context, id uuid.UUID) (*JournalEntry, error)
	Create(ctx context.Context, entry *JournalEntry) error
	Update(ctx context.Context, entry *JournalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkoutRepository defines the interface for workout template, exercise and log persistence
type WorkoutRepository interface {
	// ListTemplates retrieves all templates ordered by Order, each with its
	// exercises ordered by Order and their logs newest date first
	ListTemplates(ctx context.Context) ([]*WorkoutTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*WorkoutTemplate, error)
	CreateTemplate(ctx context.Context, template *WorkoutTemplate) error

	// DeleteTemplate removes the template with its exercises and their logs
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	GetExercise(ctx context.Context, id uuid.UUID) (*TemplateExercise, error)
	AddExercise(ctx context.Context, exercise *TemplateExercise) error

	// DeleteExercise removes the exercise with its logs
	DeleteExercise(ctx context.Context, id uuid.UUID) error

	// UpsertLog inserts the log, or overwrites the entries and notes of the
	// existing log for the same exercise and date. On return log holds the
	// stored ID and CreatedAt.
	UpsertLog(ctx context.Context, log *ExerciseLog) error

	// ListLogs retrieves at most limit logs of an exercise, newest date first.
	// A limit <= 0 means no limit.
	ListLogs(ctx context.Context, exerciseID uuid.UUID, limit int) ([]*ExerciseLog, error)

	// ListLogsByExerciseName retrieves at most limit logs of every exercise
	// named exactly name (case-sensitive), most recently created first.
	// A limit <= 0 means no limit.
	ListLogsByExerciseName(ctx context.Context, name string, limit int) ([]*ExerciseLog, error)
}

// HoldingRepository defines the interface for holding persistence operations
type HoldingRepository interface {
	// List retrieves all holdings sorted by symbol
	List(ctx context.Context) ([]*Holding, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Holding, error)
	Create(ctx context.Context, holding *Holding) error
	Update(ctx context.Context, holding *Holding) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WatchlistRepository defines the interface for watchlist persistence operations
type WatchlistRepository interface {
	// List retrieves all items, newest first
	List(ctx context.Context) ([]*WatchlistItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WatchlistItem, error)
	Create(ctx context.Context, item *WatchlistItem) error
	Update(ctx context.Context, item *WatchlistItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository defines the interface for goal persistence operations
type GoalRepository interface {
	// List retrieves goals ordered by status then newest first.
	// If goalType is empty, returns all goals.
	List(ctx context.Context, goalType GoalType) ([]*Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DietRepository defines the interface for diet log and diet goals persistence
type DietRepository interface {
	// GetLog retrieves the log of the given day
	GetLog(ctx context.Context, date time.Time) (*DietLog, error)

	// ListLogs retrieves logs dated at or after since, newest first.
	// A zero since returns every log.
	ListLogs(ctx context.Context, since time.Time) ([]*DietLog, error)

	// UpsertLog inserts the log or overwrites the existing log of the same day
	UpsertLog(ctx context.Context, log *DietLog) error

	// GetGoals retrieves the diet goals, ErrNotFound if they were never saved
	GetGoals(ctx context.Context) (*DietGoals, error)

	// SaveGoals inserts or updates the single diet goals row
	SaveGoals(ctx context.Context, goals *DietGoals) error
}

// SupplementRepository defines the interface for supplement persistence operations
type SupplementRepository interface {
	// List retrieves supplements, active first, then by time of day, then by name
	List(ctx context.Context, activeOnly bool) ([]*Supplement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Supplement, error)
	Create(ctx context.Context, supplement *Supplement) error
	Update(ctx context.Context, supplement *Supplement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WeightRepository defines the interface for weight log persistence operations
type WeightRepository interface {
	// List retrieves logs dated at or after since, oldest first.
	// A zero since returns every log.
	List(ctx context.Context, since time.Time) ([]*WeightLog, error)

	// Latest retrieves the most recent log, ErrNotFound if there is none
	Latest(ctx context.Context) (*WeightLog, error)

	// Upsert inserts the log or overwrites the existing log of the same day
	Upsert(ctx context.Context, log *WeightLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroceryRepository defines the interface for grocery list persistence operations
type GroceryRepository interface {
	// List retrieves items, unchecked first, then by category, then newest first
	List(ctx context.Context) ([]*GroceryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GroceryItem, error)
	Create(ctx context.Context, item *GroceryItem) error
	Update(ctx context.Context, item *GroceryItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteChecked removes every checked item and returns how many were removed
	DeleteChecked(ctx context.Context) (int, error)
}

// IdeaRepository defines the interface for creative idea persistence operations
type IdeaRepository interface {
	// List retrieves ideas, pinned first, then newest first.
	// If category is empty, returns all ideas.
	List(ctx context.Context, category string) ([]*CreativeIdea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CreativeIdea, error)
	Create(ctx context.Context, idea *CreativeIdea) error
	Update(ctx context.Context, idea *CreativeIdea) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuoteRepository defines the interface for daily quote persistence operations
type QuoteRepository interface {
	// GetByDate retrieves the quote of the given day
	GetByDate(ctx context.Context, date time.Time) (*DailyQuote, error)

	// List retrieves every stored quote, newest day first
	List(ctx context.Context) ([]*DailyQuote, error)

	// Upsert inserts the quote or overwrites the quote of the same day
	Upsert(ctx context.Context, quote *DailyQuote) error
}

// Repositories groups every repository of the system
type Repositories struct {
	Tasks       TaskRepository
	Journal     JournalRepository
	Workouts    WorkoutRepository
	Holdings    HoldingRepository
	Watchlist   WatchlistRepository
	Goals       GoalRepository
	Diet        DietRepository
	Supplements SupplementRepository
	Weights     WeightRepository
	Groceries   GroceryRepository
	Ideas       IdeaRepository
	Quotes      QuoteRepository
}

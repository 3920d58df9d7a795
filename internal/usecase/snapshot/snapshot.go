// Package snapshot assembles the consolidated export of every domain and
// ships it to a backup sink.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

const (
	// Version of the export document format
	Version = "1.0"

	// LocalLayout formats exportedAtLA, e.g. "October 18, 2026 at 3:04 PM"
	LocalLayout = "January 2, 2006 at 3:04 PM"

	filePrefix = "life-dashboard-backup-"
	fileLayout = "2006-01-02T150405Z"
)

// Snapshot is the export document
type Snapshot struct {
	ExportedAt   time.Time `json:"exportedAt"`
	ExportedAtLA string    `json:"exportedAtLA"`
	Version      string    `json:"version"`
	Data         Data      `json:"data"`
	Stats        Stats     `json:"stats"`
}

// Data holds every record, grouped by domain
type Data struct {
	Tasks     []*domain.Task         `json:"tasks"`
	Fitness   FitnessData            `json:"fitness"`
	Diet      DietData               `json:"diet"`
	Finance   FinanceData            `json:"finance"`
	Journal   []*domain.JournalEntry `json:"journal"`
	Groceries []*domain.GroceryItem  `json:"groceries"`
	Goals     []*domain.Goal         `json:"goals"`
	Creative  []*domain.CreativeIdea `json:"creative"`
	Quotes    []*domain.DailyQuote   `json:"quotes"`
}

// FitnessData holds the templates with their nested exercises and logs
type FitnessData struct {
	Templates []*domain.WorkoutTemplate `json:"templates"`
}

// DietData holds the diet records. Goals is nil until they were first saved.
type DietData struct {
	Logs        []*domain.DietLog    `json:"logs"`
	Goals       *domain.DietGoals    `json:"goals"`
	Supplements []*domain.Supplement `json:"supplements"`
	WeightLogs  []*domain.WeightLog  `json:"weightLogs"`
}

// FinanceData holds the holdings and the watchlist
type FinanceData struct {
	Holdings  []*domain.Holding       `json:"holdings"`
	Watchlist []*domain.WatchlistItem `json:"watchlist"`
}

// Stats counts the exported records. Total is the sum of every other field.
// The singleton diet goals row is not counted.
type Stats struct {
	Tasks            int `json:"tasks"`
	WorkoutTemplates int `json:"workoutTemplates"`
	Exercises        int `json:"exercises"`
	ExerciseLogs     int `json:"exerciseLogs"`
	DietLogs         int `json:"dietLogs"`
	Supplements      int `json:"supplements"`
	WeightLogs       int `json:"weightLogs"`
	Holdings         int `json:"holdings"`
	WatchlistItems   int `json:"watchlistItems"`
	JournalEntries   int `json:"journalEntries"`
	GroceryItems     int `json:"groceryItems"`
	Goals            int `json:"goals"`
	CreativeIdeas    int `json:"creativeIdeas"`
	DailyQuotes      int `json:"dailyQuotes"`
	Total            int `json:"total"`
}

// Count derives the stats from the exported data
func Count(d Data) Stats {
	s := Stats{
		Tasks:            len(d.Tasks),
		WorkoutTemplates: len(d.Fitness.Templates),
		DietLogs:         len(d.Diet.Logs),
		Supplements:      len(d.Diet.Supplements),
		WeightLogs:       len(d.Diet.WeightLogs),
		Holdings:         len(d.Finance.Holdings),
		WatchlistItems:   len(d.Finance.Watchlist),
		JournalEntries:   len(d.Journal),
		GroceryItems:     len(d.Groceries),
		Goals:            len(d.Goals),
		CreativeIdeas:    len(d.Creative),
		DailyQuotes:      len(d.Quotes),
	}
	for _, t := range d.Fitness.Templates {
		s.Exercises += len(t.Exercises)
		for _, e := range t.Exercises {
			s.ExerciseLogs += len(e.Logs)
		}
	}

	s.Total = s.Tasks + s.WorkoutTemplates + s.Exercises + s.ExerciseLogs +
		s.DietLogs + s.Supplements + s.WeightLogs +
		s.Holdings + s.WatchlistItems + s.JournalEntries +
		s.GroceryItems + s.Goals + s.CreativeIdeas + s.DailyQuotes
	return s
}

// Sink stores a finished backup file and returns where it was written
type Sink interface {
	Put(ctx context.Context, name string, body []byte) (string, error)
}

// BackupResult describes an uploaded backup
type BackupResult struct {
	Location string `json:"location"`
	Size     int    `json:"size"`
	Stats    Stats  `json:"stats"`
}

// Exporter reads every domain and builds snapshots. It never writes to the store.
type Exporter struct {
	Repos    domain.Repositories
	Calendar calendar.Calendar
	Now      func() time.Time
}

// NewExporter creates a new Exporter instance
func NewExporter(repos domain.Repositories, cal calendar.Calendar) *Exporter {
	return &Exporter{
		Repos:    repos,
		Calendar: cal,
		Now:      time.Now,
	}
}

// Export reads every domain in full and assembles the export document
func (e *Exporter) Export(ctx context.Context) (*Snapshot, error) {
	data, err := e.read(ctx)
	if err != nil {
		return nil, err
	}

	now := e.Now()
	return &Snapshot{
		ExportedAt:   now.UTC(),
		ExportedAtLA: e.Calendar.Format(now, LocalLayout),
		Version:      Version,
		Data:         *data,
		Stats:        Count(*data),
	}, nil
}

// Stats returns the record counts without the records
func (e *Exporter) Stats(ctx context.Context) (*Stats, error) {
	data, err := e.read(ctx)
	if err != nil {
		return nil, err
	}
	stats := Count(*data)
	return &stats, nil
}

// FileName returns the backup file name for a snapshot taken at t
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(fileLayout) + ".json"
}

// Backup exports every domain and writes the document to sink
func (e *Exporter) Backup(ctx context.Context, sink Sink) (*BackupResult, error) {
	snap, err := e.Export(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	location, err := sink.Put(ctx, FileName(snap.ExportedAt), body)
	if err != nil {
		return nil, fmt.Errorf("failed to store backup: %w", err)
	}

	return &BackupResult{
		Location: location,
		Size:     len(body),
		Stats:    snap.Stats,
	}, nil
}

func (e *Exporter) read(ctx context.Context) (*Data, error) {
	var (
		d   Data
		err error
	)

	if d.Tasks, err = e.Repos.Tasks.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export tasks: %w", err)
	}
	if d.Fitness.Templates, err = e.Repos.Workouts.ListTemplates(ctx); err != nil {
		return nil, fmt.Errorf("failed to export workout templates: %w", err)
	}
	if d.Diet.Logs, err = e.Repos.Diet.ListLogs(ctx, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to export diet logs: %w", err)
	}
	if d.Diet.Goals, err = e.dietGoals(ctx); err != nil {
		return nil, err
	}
	if d.Diet.Supplements, err = e.Repos.Supplements.List(ctx, false); err != nil {
		return nil, fmt.Errorf("failed to export supplements: %w", err)
	}
	if d.Diet.WeightLogs, err = e.Repos.Weights.List(ctx, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to export weight logs: %w", err)
	}
	if d.Finance.Holdings, err = e.Repos.Holdings.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export holdings: %w", err)
	}
	if d.Finance.Watchlist, err = e.Repos.Watchlist.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export watchlist: %w", err)
	}
	if d.Journal, err = e.Repos.Journal.List(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to export journal: %w", err)
	}
	if d.Groceries, err = e.Repos.Groceries.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export groceries: %w", err)
	}
	if d.Goals, err = e.Repos.Goals.List(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to export goals: %w", err)
	}
	if d.Creative, err = e.Repos.Ideas.List(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to export ideas: %w", err)
	}
	if d.Quotes, err = e.Repos.Quotes.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export quotes: %w", err)
	}
	return &d, nil
}

// dietGoals returns nil when the goals were never saved
func (e *Exporter) dietGoals(ctx context.Context) (*domain.DietGoals, error) {
	goals, err := e.Repos.Diet.GetGoals(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export diet goals: %w", err)
	}
	return goals, nil
}

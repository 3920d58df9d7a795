package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/dashboard"
	"github.com/simaogato/lifedash-backend/internal/usecase/duedate"
	"github.com/simaogato/lifedash-backend/internal/usecase/goal"
	"github.com/simaogato/lifedash-backend/internal/usecase/grocery"
	"github.com/simaogato/lifedash-backend/internal/usecase/quote"
	"github.com/simaogato/lifedash-backend/internal/usecase/snapshot"
	"github.com/simaogato/lifedash-backend/internal/usecase/task"
	"github.com/simaogato/lifedash-backend/internal/usecase/valuation"
)

func laCalendar(t *testing.T) calendar.Calendar {
	t.Helper()
	cal, err := calendar.Load("America/Los_Angeles")
	require.NoError(t, err)
	return cal
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0.005", "USD", "$0.01"},
		{"1500", "JPY", "¥1,500"},
		{"10", "XXZ", "10.00 XXZ"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoney(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestSummary_WriteMarkdown(t *testing.T) {
	// Setup
	cal := laCalendar(t)
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	due := time.Date(2024, 3, 14, 20, 0, 0, 0, time.UTC)
	author := "Seneca"

	summary := &Summary{
		Date:     now,
		Calendar: cal,
		Overview: &dashboard.Overview{
			Tasks:         task.TodayCounts{Pending: 2, CompletedToday: 1},
			JournalStreak: 1,
			Goals:         goal.Stats{Total: 3, Active: 2, Completed: 1},
			Groceries:     grocery.Counts{Total: 5, Unchecked: 4},
			LatestWeight:  &domain.WeightLog{Weight: 181.4, Date: cal.Start(calendar.NewDay(2024, 3, 14))},
			Quote: &quote.Daily{DailyQuote: domain.DailyQuote{
				Quote:  "Luck is what happens when preparation meets opportunity.",
				Author: &author,
			}},
		},
		Tasks: []duedate.ClassifiedTask{
			{Task: &domain.Task{ID: uuid.New(), Title: "Pay rent | utilities", DueDate: &due, Priority: 3, Status: domain.TaskStatusPending}, Urgency: duedate.UrgencyOverdue},
			{Task: &domain.Task{ID: uuid.New(), Title: "Stretch", Status: domain.TaskStatusPending}, Urgency: duedate.UrgencyNone},
			{Task: &domain.Task{ID: uuid.New(), Title: "Done already", Status: domain.TaskStatusCompleted}, Urgency: duedate.UrgencyNone},
		},
		Portfolio: &valuation.Portfolio{
			TotalValue:       decimal.RequireFromString("15000"),
			TotalGain:        decimal.RequireFromString("2500.255"),
			TotalGainPercent: decimal.RequireFromString("20.002"),
			HoldingsCount:    1,
			Allocation: []valuation.Allocation{
				{Symbol: "VOO", Value: decimal.RequireFromString("15000"), Percentage: decimal.NewFromInt(100)},
			},
		},
	}

	// Execute
	var buf bytes.Buffer
	summary.WriteMarkdown(&buf, "USD")
	out := buf.String()

	// Assert
	assert.Contains(t, out, "# Dashboard, Friday, March 15, 2024")
	assert.Contains(t, out, "> Seneca")
	assert.Contains(t, out, "- Tasks: 2 pending, 1 completed today")
	assert.Contains(t, out, "- Journal streak: 1 day\n")
	assert.Contains(t, out, "- Groceries: 4 of 5 left")
	assert.Contains(t, out, "- Weight: 181.4 (2024-03-14)")
	assert.Contains(t, out, `| Pay rent \| utilities | 2024-03-14 | overdue | 3 |`)
	assert.Contains(t, out, "| Stretch | - | none | 0 |")
	assert.NotContains(t, out, "Done already")
	assert.Contains(t, out, "Total value **$15,000.00**, gain $2,500.26 (20.00%) over 1 holding.")
	assert.Contains(t, out, "| VOO | $15,000.00 | 100.0% |")
}

func TestQuery(t *testing.T) {
	var doc interface{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"data": {"tasks": [
			{"title": "a", "status": "pending"},
			{"title": "b", "status": "completed"}
		]},
		"stats": {"tasks": 2}
	}`), &doc))

	var buf bytes.Buffer
	require.NoError(t, Query(&buf, `$.data.tasks[?(@.status=="pending")].title`, doc))
	assert.JSONEq(t, `["a"]`, buf.String())

	buf.Reset()
	require.NoError(t, Query(&buf, `$.stats.tasks`, doc))
	assert.Equal(t, "2\n", buf.String())

	assert.Error(t, Query(&buf, `$.[`, doc))
}

func TestExportCmd_MemoryStore(t *testing.T) {
	// Setup
	t.Setenv("STORE", "memory")
	t.Setenv("TIMEZONE", "America/Los_Angeles")
	*envFile = filepath.Join(t.TempDir(), "missing.env")
	out := filepath.Join(t.TempDir(), "export.json")

	cmd := &exportCmd{}
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-o", out}))

	// Execute
	status := cmd.Execute(context.Background(), fs)

	// Assert
	require.Equal(t, subcommands.ExitSuccess, status)
	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var snap snapshot.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, snapshot.Version, snap.Version)
	assert.Equal(t, 0, snap.Stats.Tasks)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(data)), "}"))
}

func TestQueryCmd_Usage(t *testing.T) {
	cmd := &queryCmd{}
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), fs))
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"export", "backup", "query", "summary"} {
		assert.Contains(t, c.Sub, name)
	}
	assert.Contains(t, c.Sub["summary"].Flags, "html")
}

// Package app wires the use case services over a set of repositories.
package app

import (
	"time"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/creative"
	"github.com/simaogato/lifedash-backend/internal/usecase/dashboard"
	"github.com/simaogato/lifedash-backend/internal/usecase/diet"
	"github.com/simaogato/lifedash-backend/internal/usecase/fitness"
	"github.com/simaogato/lifedash-backend/internal/usecase/goal"
	"github.com/simaogato/lifedash-backend/internal/usecase/grocery"
	"github.com/simaogato/lifedash-backend/internal/usecase/investment"
	"github.com/simaogato/lifedash-backend/internal/usecase/journal"
	"github.com/simaogato/lifedash-backend/internal/usecase/quote"
	"github.com/simaogato/lifedash-backend/internal/usecase/snapshot"
	"github.com/simaogato/lifedash-backend/internal/usecase/task"
)

// Services holds one instance of every use case service
type Services struct {
	Tasks      *task.TaskService
	Journal    *journal.JournalService
	Fitness    *fitness.FitnessService
	Investment *investment.InvestmentService
	Goals      *goal.GoalService
	Diet       *diet.DietService
	Groceries  *grocery.GroceryService
	Creative   *creative.CreativeService
	Quotes     *quote.QuoteService
	Dashboard  *dashboard.DashboardService
	Snapshot   *snapshot.Exporter
}

// New builds every service over repos, reducing instants to days with cal
func New(repos domain.Repositories, cal calendar.Calendar) *Services {
	s := &Services{
		Tasks:      task.NewTaskService(repos.Tasks, cal),
		Journal:    journal.NewJournalService(repos.Journal, cal),
		Fitness:    fitness.NewFitnessService(repos.Workouts, cal),
		Investment: investment.NewInvestmentService(repos.Holdings, repos.Watchlist),
		Goals:      goal.NewGoalService(repos.Goals),
		Diet:       diet.NewDietService(repos.Diet, repos.Supplements, repos.Weights, cal),
		Groceries:  grocery.NewGroceryService(repos.Groceries),
		Creative:   creative.NewCreativeService(repos.Ideas),
		Quotes:     quote.NewQuoteService(repos.Quotes, cal),
		Snapshot:   snapshot.NewExporter(repos, cal),
	}
	s.Dashboard = dashboard.NewDashboardService(s.Tasks, s.Journal, s.Investment, s.Goals, s.Groceries, s.Diet, s.Quotes)
	return s
}

// SetClock replaces the clock of every service. Used by tests and the CLI.
func (s *Services) SetClock(now func() time.Time) {
	s.Tasks.Now = now
	s.Journal.Now = now
	s.Fitness.Now = now
	s.Investment.Now = now
	s.Goals.Now = now
	s.Diet.Now = now
	s.Groceries.Now = now
	s.Creative.Now = now
	s.Quotes.Now = now
	s.Snapshot.Now = now
}

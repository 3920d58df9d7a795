package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/diet"
	"github.com/simaogato/lifedash-backend/internal/usecase/goal"
	"github.com/simaogato/lifedash-backend/internal/usecase/grocery"
	"github.com/simaogato/lifedash-backend/internal/usecase/investment"
	"github.com/simaogato/lifedash-backend/internal/usecase/journal"
	"github.com/simaogato/lifedash-backend/internal/usecase/quote"
	"github.com/simaogato/lifedash-backend/internal/usecase/task"
)

// PortfolioSummary is the headline of the portfolio valuation
type PortfolioSummary struct {
	TotalValue       decimal.Decimal `json:"totalValue"`
	TotalGain        decimal.Decimal `json:"totalGain"`
	TotalGainPercent decimal.Decimal `json:"totalGainPercent"`
	HoldingsCount    int             `json:"holdingsCount"`
}

// Overview is the home page summary
type Overview struct {
	Tasks         task.TodayCounts  `json:"tasks"`
	JournalStreak int               `json:"journalStreak"`
	Portfolio     PortfolioSummary  `json:"portfolio"`
	Goals         goal.Stats        `json:"goals"`
	Groceries     grocery.Counts    `json:"groceries"`
	LatestWeight  *domain.WeightLog `json:"latestWeight"`
	Quote         *quote.Daily      `json:"quote"`
}

// DashboardService builds the home page summary from the other services
type DashboardService struct {
	Tasks      *task.TaskService
	Journal    *journal.JournalService
	Investment *investment.InvestmentService
	Goals      *goal.GoalService
	Groceries  *grocery.GroceryService
	Diet       *diet.DietService
	Quotes     *quote.QuoteService
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	tasks *task.TaskService,
	journalService *journal.JournalService,
	investmentService *investment.InvestmentService,
	goals *goal.GoalService,
	groceries *grocery.GroceryService,
	dietService *diet.DietService,
	quotes *quote.QuoteService,
) *DashboardService {
	return &DashboardService{
		Tasks:      tasks,
		Journal:    journalService,
		Investment: investmentService,
		Goals:      goals,
		Groceries:  groceries,
		Diet:       dietService,
		Quotes:     quotes,
	}
}

// GetOverview computes every summary shown on the home page.
// Each figure is derived from a fresh read, nothing is cached.
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	// 1. Today's tasks
	counts, err := s.Tasks.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	// 2. Journal streak
	streak, err := s.Journal.Streak(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute journal streak: %w", err)
	}

	// 3. Portfolio totals
	portfolio, err := s.Investment.Portfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to value portfolio: %w", err)
	}

	// 4. Goals and groceries
	goalStats, err := s.Goals.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}
	groceryCounts, err := s.Groceries.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count groceries: %w", err)
	}

	// 5. Latest weight and the quote of the day
	weight, err := s.Diet.LatestWeight(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := s.Quotes.Today(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Tasks:         *counts,
		JournalStreak: streak,
		Portfolio: PortfolioSummary{
			TotalValue:       portfolio.TotalValue,
			TotalGain:        portfolio.TotalGain,
			TotalGainPercent: portfolio.TotalGainPercent,
			HoldingsCount:    portfolio.HoldingsCount,
		},
		Goals:        *goalStats,
		Groceries:    *groceryCounts,
		LatestWeight: weight,
		Quote:        daily,
	}, nil
}

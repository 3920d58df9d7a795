package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

type builtin struct {
	quote  string
	author string
}

// rotation is shown, one per day of year, when no quote was set for the day
var rotation = []builtin{
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb"},
}

// Input holds a quote to set for today
type Input struct {
	Quote  string  `json:"quote"`
	Author *string `json:"author"`
	Source *string `json:"source"`
}

// Daily is the quote shown for a day. IsDefault marks a quote from the built-in rotation.
type Daily struct {
	domain.DailyQuote
	IsDefault bool `json:"isDefault"`
}

// QuoteService handles the quote of the day
type QuoteService struct {
	QuoteRepo domain.QuoteRepository
	Calendar  calendar.Calendar
	Now       func() time.Time
}

// NewQuoteService creates a new QuoteService instance
func NewQuoteService(quoteRepo domain.QuoteRepository, cal calendar.Calendar) *QuoteService {
	return &QuoteService{
		QuoteRepo: quoteRepo,
		Calendar:  cal,
		Now:       time.Now,
	}
}

// Today returns the quote set for today, or the rotation entry for today's day of year
func (s *QuoteService) Today(ctx context.Context) (*Daily, error) {
	today := s.Calendar.DayOf(s.Now())
	start := s.Calendar.Start(today)

	stored, err := s.QuoteRepo.GetByDate(ctx, start)
	if err == nil {
		return &Daily{DailyQuote: *stored}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to get today's quote: %w", err)
	}

	pick := rotation[today.YearDay()%len(rotation)]
	author := pick.author
	return &Daily{
		DailyQuote: domain.DailyQuote{
			Date:      start,
			Quote:     pick.quote,
			Author:    &author,
			CreatedAt: start,
		},
		IsDefault: true,
	}, nil
}

// SetToday stores the quote for today, replacing any quote already set
func (s *QuoteService) SetToday(ctx context.Context, input Input) (*domain.DailyQuote, error) {
	now := s.Now()
	quote := &domain.DailyQuote{
		ID:        uuid.New(),
		Date:      s.Calendar.StartOfDay(now),
		Quote:     strings.TrimSpace(input.Quote),
		Author:    domain.TrimOptional(input.Author),
		Source:    domain.TrimOptional(input.Source),
		CreatedAt: now,
	}
	if err := quote.Validate(); err != nil {
		return nil, err
	}
	if err := s.QuoteRepo.Upsert(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	return quote, nil
}

// List returns every stored quote, newest day first
func (s *QuoteService) List(ctx context.Context) ([]*domain.DailyQuote, error) {
	quotes, err := s.QuoteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

type validator interface {
	Validate() error
}

// DemoSeeder fills an empty store with sample records for local development
type DemoSeeder struct {
	repos domain.Repositories
	cal   calendar.Calendar
	now   func() time.Time
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(repos domain.Repositories, cal calendar.Calendar) *DemoSeeder {
	return &DemoSeeder{
		repos: repos,
		cal:   cal,
		now:   time.Now,
	}
}

// Seed inserts the sample records. It does nothing when tasks already exist,
// and reports whether anything was inserted.
func (s *DemoSeeder) Seed(ctx context.Context) (bool, error) {
	existing, err := s.repos.Tasks.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list tasks: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	steps := []func(context.Context, time.Time) error{
		s.seedTasks,
		s.seedGroceries,
		s.seedJournal,
		s.seedWorkouts,
		s.seedFinance,
		s.seedGoals,
		s.seedDiet,
	}
	now := s.now()
	for _, step := range steps {
		if err := step(ctx, now); err != nil {
			return false, err
		}
	}
	return true, nil
}

func check(v validator) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("invalid demo record: %w", err)
	}
	return nil
}

func text(s string) *string { return &s }

func (s *DemoSeeder) seedTasks(ctx context.Context, now time.Time) error {
	day := func(offset int) *time.Time {
		t := s.cal.Start(s.cal.DayOf(now).AddDays(offset)).Add(17 * time.Hour)
		return &t
	}
	tasks := []domain.Task{
		{Title: "Review pull request for auth feature", Priority: domain.PriorityHigh, DueDate: day(0)},
		{Title: "Schedule dentist appointment", Priority: domain.PriorityMedium, DueDate: day(1)},
		{Title: "Prepare presentation slides", Priority: domain.PriorityHigh, DueDate: day(7)},
		{Title: "Update project documentation", Priority: domain.PriorityLow},
		{Title: "Call insurance company", Priority: domain.PriorityMedium, DueDate: day(-1)},
		{Title: "Finish reading chapter 5", Priority: domain.PriorityLow, Status: domain.TaskStatusCompleted},
	}
	for i := range tasks {
		t := &tasks[i]
		t.ID = uuid.New()
		if t.Status == "" {
			t.Status = domain.TaskStatusPending
		}
		t.CreatedAt = now.Add(-time.Duration(len(tasks)-i) * time.Minute)
		t.UpdatedAt = t.CreatedAt
		if err := check(t); err != nil {
			return err
		}
		if err := s.repos.Tasks.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (s *DemoSeeder) seedGroceries(ctx context.Context, now time.Time) error {
	items := []struct {
		name, category string
		checked        bool
	}{
		{"Chicken breast", "Protein", false},
		{"Eggs (2 dozen)", "Protein", false},
		{"Greek yogurt", "Dairy", false},
		{"Spinach", "Vegetables", false},
		{"Bananas", "Fruits", false},
		{"Oatmeal", "Grains", false},
		{"Olive oil", "Pantry", true},
	}
	for _, in := range items {
		item := &domain.GroceryItem{
			ID:        uuid.New(),
			Name:      in.name,
			Category:  text(in.category),
			IsChecked: in.checked,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := check(item); err != nil {
			return err
		}
		if err := s.repos.Groceries.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *DemoSeeder) seedJournal(ctx context.Context, now time.Time) error {
	entries := []struct {
		daysAgo int
		content string
		mood    string
		tags    []string
	}{
		{0, "Had a really productive day. Finished the feature I have been working on.", "good", []string{"work", "wins"}},
		{1, "Reflected on my goals for the year. Need to be more consistent with reading.", "okay", []string{"reflection", "goals"}},
		{2, "New PR on bench press this morning. Lunch with an old friend.", "great", []string{"fitness", "friends"}},
		{5, "Quiet weekend at home. Meal prep and some reading.", "good", []string{"weekend", "rest"}},
	}
	for _, in := range entries {
		created := now.AddDate(0, 0, -in.daysAgo)
		entry := &domain.JournalEntry{
			ID:        uuid.New(),
			Content:   in.content,
			Tags:      domain.NormalizeTags(in.tags),
			Mood:      text(in.mood),
			CreatedAt: created,
			UpdatedAt: created,
		}
		if err := check(entry); err != nil {
			return err
		}
		if err := s.repos.Journal.Create(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (s *DemoSeeder) seedWorkouts(ctx context.Context, now time.Time) error {
	templates := []struct {
		name      string
		exercises [][2]string
	}{
		{"PUSH DAY", [][2]string{{"Smith Incline Chest Press", "6-8"}, {"Chest Fly Pec Dec", "8-10"}, {"Shoulder Press", "6-8"}}},
		{"PULL DAY", [][2]string{{"Lat Pulldown", "6-8"}, {"Seated Cable Row", "8-10"}, {"Preacher Curl", "8-12"}}},
		{"LEG DAY", [][2]string{{"Hack Squat", "6-8"}, {"Leg Extension", "8-12"}, {"Seated Leg Curl", "8-12"}}},
	}
	for order, in := range templates {
		template := &domain.WorkoutTemplate{
			ID:        uuid.New(),
			Name:      in.name,
			Order:     order,
			CreatedAt: now,
		}
		if err := check(template); err != nil {
			return err
		}
		for i, ex := range in.exercises {
			exercise := domain.TemplateExercise{
				ID:         uuid.New(),
				TemplateID: template.ID,
				Name:       ex[0],
				Sets:       text("2 Working Sets"),
				RepRange:   text(ex[1]),
				Order:      i,
			}
			if err := check(&exercise); err != nil {
				return err
			}
			template.Exercises = append(template.Exercises, exercise)
		}
		if err := s.repos.Workouts.CreateTemplate(ctx, template); err != nil {
			return err
		}
	}
	return nil
}

func (s *DemoSeeder) seedFinance(ctx context.Context, now time.Time) error {
	price := func(v string) *decimal.Decimal {
		d := decimal.RequireFromString(v)
		return &d
	}
	holdings := []domain.Holding{
		{Symbol: "VOO", Shares: decimal.NewFromInt(12), AvgCost: decimal.RequireFromString("412.50"), CurrentPrice: price("505.10")},
		{Symbol: "AAPL", Shares: decimal.NewFromInt(20), AvgCost: decimal.RequireFromString("165.00"), CurrentPrice: price("228.40")},
		{Symbol: "NVDA", Shares: decimal.NewFromInt(8), AvgCost: decimal.RequireFromString("140.00")},
	}
	for i := range holdings {
		h := &holdings[i]
		h.ID = uuid.New()
		h.CreatedAt = now
		h.UpdatedAt = now
		if err := check(h); err != nil {
			return err
		}
		if err := s.repos.Holdings.Create(ctx, h); err != nil {
			return err
		}
	}

	for _, symbol := range []string{"AMD", "MSFT"} {
		item := &domain.WatchlistItem{ID: uuid.New(), Symbol: symbol, CreatedAt: now}
		if err := check(item); err != nil {
			return err
		}
		if err := s.repos.Watchlist.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *DemoSeeder) seedGoals(ctx context.Context, now time.Time) error {
	goals := []domain.Goal{
		{Title: "Run a half marathon", Type: domain.GoalTypeShort, Status: domain.GoalStatusActive, Progress: 40},
		{Title: "Read 24 books", Type: domain.GoalTypeLong, Status: domain.GoalStatusActive, Progress: 25},
		{Title: "Build an emergency fund", Type: domain.GoalTypeLong, Status: domain.GoalStatusCompleted, Progress: 100},
	}
	for i := range goals {
		g := &goals[i]
		g.ID = uuid.New()
		g.CreatedAt = now
		g.UpdatedAt = now
		if err := check(g); err != nil {
			return err
		}
		if err := s.repos.Goals.Create(ctx, g); err != nil {
			return err
		}
	}

	idea := &domain.CreativeIdea{
		ID:        uuid.New(),
		Title:     "Photo series of the neighbourhood at dawn",
		Category:  text("photography"),
		Tags:      []string{"project"},
		IsPinned:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := check(idea); err != nil {
		return err
	}
	return s.repos.Ideas.Create(ctx, idea)
}

func (s *DemoSeeder) seedDiet(ctx context.Context, now time.Time) error {
	supplements := []domain.Supplement{
		{Name: "Creatine", Dosage: text("5g"), Frequency: domain.FrequencyDaily, TimeOfDay: text("morning"), IsActive: true},
		{Name: "Vitamin D3", Dosage: text("2000 IU"), Frequency: domain.FrequencyDaily, TimeOfDay: text("with-meals"), IsActive: true},
		{Name: "Magnesium", Dosage: text("400mg"), Frequency: domain.FrequencyDaily, TimeOfDay: text("bedtime"), IsActive: true},
	}
	for i := range supplements {
		sup := &supplements[i]
		sup.ID = uuid.New()
		sup.CreatedAt = now
		sup.UpdatedAt = now
		if err := check(sup); err != nil {
			return err
		}
		if err := s.repos.Supplements.Create(ctx, sup); err != nil {
			return err
		}
	}

	today := s.cal.DayOf(now)
	for i := 14; i >= 0; i-- {
		log := &domain.WeightLog{
			ID:        uuid.New(),
			Date:      s.cal.Start(today.AddDays(-i)),
			Weight:    186 - float64(14-i)*0.2,
			CreatedAt: now,
		}
		if err := check(log); err != nil {
			return err
		}
		if err := s.repos.Weights.Upsert(ctx, log); err != nil {
			return err
		}
	}
	return nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// DietLog holds the macro totals for one calendar day (unique per day)
type DietLog struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"` // start of day in the deployment timezone
	Calories  int       `json:"calories"`
	Protein   int       `json:"protein"`
	Carbs     int       `json:"carbs"`
	Fat       int       `json:"fat"`
	Fiber     int       `json:"fiber"`
	Water     float64   `json:"water"` // oz
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DietGoals holds the daily macro targets. There is a single row.
type DietGoals struct {
	ID        uuid.UUID `json:"id"`
	Calories  int       `json:"calories"`
	Protein   int       `json:"protein"`
	Carbs     int       `json:"carbs"`
	Fat       int       `json:"fat"`
	Fiber     int       `json:"fiber"`
	Water     float64   `json:"water"` // oz
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultDietGoals returns the targets used until the user sets their own
func DefaultDietGoals() DietGoals {
	return DietGoals{
		Calories: 2000,
		Protein:  150,
		Carbs:    200,
		Fat:      65,
		Fiber:    30,
		Water:    100,
	}
}

// Supplement frequencies
const (
	FrequencyDaily      = "daily"
	FrequencyTwiceDaily = "twice-daily"
	FrequencyThreeTimes = "three-times"
	FrequencyWeekly     = "weekly"
	FrequencyAsNeeded   = "as-needed"
)

var supplementFrequencies = []string{
	FrequencyDaily, FrequencyTwiceDaily, FrequencyThreeTimes, FrequencyWeekly, FrequencyAsNeeded,
}

// TimesOfDay lists the accepted supplement time-of-day values in display order
var TimesOfDay = []string{
	"morning", "afternoon", "evening", "with-meals", "pre-workout", "post-workout", "bedtime",
}

// Supplement is a tracked supplement
type Supplement struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Dosage    *string   `json:"dosage"`
	Frequency string    `json:"frequency"`
	TimeOfDay *string   `json:"timeOfDay"`
	Notes     *string   `json:"notes"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeightLog is a body weight measurement for one calendar day (unique per day)
type WeightLog struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"` // start of day in the deployment timezone
	Weight    float64   `json:"weight"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate ensures the diet log adheres to domain rules
func (l *DietLog) Validate() error {
	checks := []struct {
		field string
		value int
		max   int
	}{
		{"calories", l.Calories, 10000},
		{"protein", l.Protein, 1000},
		{"carbs", l.Carbs, 1000},
		{"fat", l.Fat, 500},
		{"fiber", l.Fiber, 200},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > c.max {
			return invalid("%s must be between 0 and %d", c.field, c.max)
		}
	}
	if l.Water < 0 || l.Water > 300 {
		return invalid("water must be between 0 and 300")
	}
	return checkOptional("notes", l.Notes, 500)
}

// Validate ensures the diet goals adhere to domain rules
func (g *DietGoals) Validate() error {
	if g.Calories < 500 || g.Calories > 10000 {
		return invalid("calories goal must be between 500 and 10000")
	}
	checks := []struct {
		field string
		value int
		max   int
	}{
		{"protein", g.Protein, 500},
		{"carbs", g.Carbs, 1000},
		{"fat", g.Fat, 300},
		{"fiber", g.Fiber, 100},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > c.max {
			return invalid("%s goal must be between 0 and %d", c.field, c.max)
		}
	}
	if g.Water < 0 || g.Water > 300 {
		return invalid("water goal must be between 0 and 300")
	}
	return nil
}

// Validate ensures the supplement adheres to domain rules
func (s *Supplement) Validate() error {
	if err := checkLength("name", s.Name, 1, 100); err != nil {
		return err
	}
	if err := checkOptional("dosage", s.Dosage, 50); err != nil {
		return err
	}
	if !contains(supplementFrequencies, s.Frequency) {
		return invalid("unknown frequency %q", s.Frequency)
	}
	if s.TimeOfDay != nil && !contains(TimesOfDay, *s.TimeOfDay) {
		return invalid("unknown time of day %q", *s.TimeOfDay)
	}
	return checkOptional("notes", s.Notes, 500)
}

// Validate ensures the weight log adheres to domain rules
func (w *WeightLog) Validate() error {
	if w.Weight < 50 || w.Weight > 1000 {
		return invalid("weight must be between 50 and 1000")
	}
	return checkOptional("notes", w.Notes, 500)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoal_ToggleComplete(t *testing.T) {
	tests := []struct {
		name         string
		status       GoalStatus
		progress     int
		wantStatus   GoalStatus
		wantProgress int
	}{
		{"Active goal completes at 100", GoalStatusActive, 40, GoalStatusCompleted, 100},
		{"Completed goal reactivates keeping progress", GoalStatusCompleted, 100, GoalStatusActive, 100},
		{"Paused goal completes", GoalStatusPaused, 10, GoalStatusCompleted, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{Status: tt.status, Progress: tt.progress}
			g.ToggleComplete()
			assert.Equal(t, tt.wantStatus, g.Status)
			assert.Equal(t, tt.wantProgress, g.Progress)
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	valid := Goal{Title: "Run a marathon", Type: GoalTypeLong, Status: GoalStatusActive, Progress: 20}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "medium"
	assert.ErrorContains(t, badType.Validate(), "goal type must be short or long")

	badProgress := valid
	badProgress.Progress = 101
	assert.ErrorContains(t, badProgress.Validate(), "progress must be between 0 and 100")

	badStatus := valid
	badStatus.Status = "archived"
	assert.ErrorContains(t, badStatus.Validate(), "goal status must be")
}

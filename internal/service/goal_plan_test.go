package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/mindspace/internal/model"
)

var day = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func TestSubtasks_LabelFollowsDuration(t *testing.T) {
	tests := []struct {
		duration string
		first    string
	}{
		{"1 week", "Day 1: Gather learning resources"},
		{"2 weeks", "Day 1: Gather learning resources"},
		{"1 month", "Week 1: Gather learning resources"},
		{"3 Months", "Week 1: Gather learning resources"},
		{"1 year", "Phase 1: Gather learning resources"},
		{"soon", "Phase 1: Gather learning resources"},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			subtasks := Subtasks(model.CategoryStudy, tt.duration)
			require.Len(t, subtasks, 4)
			assert.Equal(t, tt.first, subtasks[0])
		})
	}
}

func TestSubtasks_Templates(t *testing.T) {
	assert.Equal(t, []string{
		"Week 1: Start with 5-minute sessions",
		"Week 2: Gradually increase frequency",
		"Week 3: Track consistency",
		"Week 4: Maintain long-term",
	}, Subtasks(model.CategoryHabit, "1 month"))

	assert.Equal(t, "Day 4: Adjust routine based on results", Subtasks(model.CategoryHealth, "1 week")[3])
	assert.Equal(t, "Phase 2: Break into actionable steps", Subtasks(model.CategoryPersonal, "1 year")[1])
}

func TestSubtasks_UnknownCategoryUsesPersonal(t *testing.T) {
	assert.Equal(t, Subtasks(model.CategoryPersonal, "1 week"), Subtasks(model.Category("Work"), "1 week"))
}

func TestNewGoal(t *testing.T) {
	g := NewGoal("id-1", GoalInput{
		Title:    "Learn Go",
		Category: model.CategoryStudy,
		Duration: model.DurationThreeMonths,
	}, day)

	assert.Equal(t, "id-1", g.ID)
	assert.Equal(t, "Learn Go", g.Title)
	assert.Equal(t, model.CategoryStudy, g.Category)
	assert.Equal(t, 0, g.Progress)
	assert.Equal(t, 0, g.Streak)
	assert.Len(t, g.Subtasks, 4)
	assert.Equal(t, "Working towards: Learn Go", g.Notes)
	assert.Equal(t, "3 months", g.Duration)
	assert.Equal(t, "2026-10-19", g.StartDate)
	assert.Equal(t, "2027-01-17", g.TargetDate)
	assert.Equal(t, "2026-10-19", g.LastUpdated)
	assert.Greater(t, g.TargetDate, g.StartDate)
}

func TestNewGoal_CustomDurationAndNotes(t *testing.T) {
	g := NewGoal("id-2", GoalInput{
		Title:          "Stretch",
		Category:       model.CategoryHealth,
		Duration:       model.DurationCustom,
		CustomDuration: "2 weeks",
		Notes:          "Every morning",
	}, day)

	assert.Equal(t, "2 weeks", g.Duration)
	assert.Equal(t, "2026-11-02", g.TargetDate)
	assert.Equal(t, "Every morning", g.Notes)
	assert.Equal(t, "Day 1: Research and plan approach", g.Subtasks[0])
}

func TestCheckIn_SameDayIsNoop(t *testing.T) {
	g := model.Goal{ID: "g", Progress: 20, Streak: 3, LastUpdated: "2026-10-19"}

	got, changed := CheckIn(g, day)

	assert.False(t, changed)
	assert.Equal(t, g, got)
}

func TestCheckIn_ContinuesStreak(t *testing.T) {
	g := model.Goal{ID: "g", Progress: 20, Streak: 3, LastUpdated: "2026-10-18"}

	got, changed := CheckIn(g, day)

	assert.True(t, changed)
	assert.Equal(t, 4, got.Streak)
	assert.Equal(t, 25, got.Progress)
	assert.Equal(t, "2026-10-19", got.LastUpdated)
}

func TestCheckIn_ResetsStreak(t *testing.T) {
	tests := []struct {
		name        string
		lastUpdated string
	}{
		{"never", ""},
		{"two days ago", "2026-10-17"},
		{"weeks ago", "2026-09-01"},
		{"in the future", "2026-10-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := model.Goal{ID: "g", Progress: 40, Streak: 7, LastUpdated: tt.lastUpdated}

			got, changed := CheckIn(g, day)

			assert.True(t, changed)
			assert.Equal(t, 1, got.Streak)
			assert.Equal(t, 45, got.Progress)
			assert.Equal(t, "2026-10-19", got.LastUpdated)
		})
	}
}

func TestCheckIn_ProgressCapped(t *testing.T) {
	g := model.Goal{ID: "g", Progress: 98, Streak: 1, LastUpdated: "2026-10-18"}

	got, _ := CheckIn(g, day)
	assert.Equal(t, 100, got.Progress)

	got.LastUpdated = "2026-10-18"
	got, _ = CheckIn(got, day)
	assert.Equal(t, 100, got.Progress)
}

func TestCheckIn_YesterdayAcrossMonthBoundary(t *testing.T) {
	g := model.Goal{ID: "g", Streak: 2, LastUpdated: "2026-02-28"}

	got, changed := CheckIn(g, time.Date(2026, 3, 1, 0, 5, 0, 0, time.UTC))

	assert.True(t, changed)
	assert.Equal(t, 3, got.Streak)
}

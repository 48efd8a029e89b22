package model

import (
	"time"
)

type Category string

const (
	CategoryHabit    Category = "Habit"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryStudy    Category = "Study"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryHabit,
	CategoryPersonal,
	CategoryHealth,
	CategoryStudy,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryHabit, CategoryPersonal, CategoryHealth, CategoryStudy:
		return true
	}
	return false
}

const (
	DurationOneWeek     = "1 week"
	DurationOneMonth    = "1 month"
	DurationThreeMonths = "3 months"
	DurationSixMonths   = "6 months"
	DurationOneYear     = "1 year"
	DurationCustom      = "custom"
)

// Durations is the fixed duration catalog offered when creating a goal.
var Durations = []string{
	DurationOneWeek,
	DurationOneMonth,
	DurationThreeMonths,
	DurationSixMonths,
	DurationOneYear,
}

// DateLayout is the calendar date format used for every persisted date.
const DateLayout = "2006-01-02"

// MaxProgress caps Goal.Progress.
const MaxProgress = 100

type Goal struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Progress    int      `json:"progress"`
	Subtasks    []string `json:"subtasks"`
	Notes       string   `json:"notes,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	TargetDate  string   `json:"targetDate,omitempty"`
	Streak      int      `json:"streak"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}

// Clone returns a copy that shares no slices with g.
func (g Goal) Clone() Goal {
	if g.Subtasks != nil {
		g.Subtasks = append([]string(nil), g.Subtasks...)
	}
	return g
}

// CheckedInOn reports whether the goal was checked in on the given day.
func (g Goal) CheckedInOn(day time.Time) bool {
	return g.LastUpdated != "" && g.LastUpdated == FormatDate(day)
}

// FormatDate truncates t to its calendar date in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

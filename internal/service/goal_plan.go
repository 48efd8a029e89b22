package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/templui/mindspace/internal/model"
)

// checkInProgress is the progress bump granted per daily check-in.
const checkInProgress = 5

var subtaskTemplates = map[model.Category][]string{
	model.CategoryHealth: {
		"Research and plan approach",
		"Start with small daily habits",
		"Track progress weekly",
		"Adjust routine based on results",
	},
	model.CategoryPersonal: {
		"Define specific outcomes",
		"Break into actionable steps",
		"Set milestone checkpoints",
		"Review and celebrate progress",
	},
	model.CategoryStudy: {
		"Gather learning resources",
		"Create study schedule",
		"Practice regularly",
		"Test knowledge and skills",
	},
	model.CategoryHabit: {
		"Start with 5-minute sessions",
		"Gradually increase frequency",
		"Track consistency",
		"Maintain long-term",
	},
}

// GoalInput is the already validated input for a new goal.
type GoalInput struct {
	Title          string
	Category       model.Category
	Duration       string // catalog value or model.DurationCustom
	CustomDuration string
	Notes          string
}

// Subtasks builds the four step checklist for a category. The label unit
// follows the rough granularity of the duration.
func Subtasks(category model.Category, duration string) []string {
	tasks, ok := subtaskTemplates[category]
	if !ok {
		tasks = subtaskTemplates[model.CategoryPersonal]
	}

	label := subtaskLabel(duration)
	subtasks := make([]string, len(tasks))
	for i, task := range tasks {
		subtasks[i] = fmt.Sprintf("%s %d: %s", label, i+1, task)
	}
	return subtasks
}

func subtaskLabel(duration string) string {
	lower := strings.ToLower(duration)
	switch {
	case strings.Contains(lower, "week"):
		return "Day"
	case strings.Contains(lower, "month"):
		return "Week"
	default:
		return "Phase"
	}
}

// NewGoal synthesizes a goal created at now.
func NewGoal(id string, in GoalInput, now time.Time) model.Goal {
	duration := EffectiveDuration(in.Duration, in.CustomDuration)
	today := model.FormatDate(now)

	notes := in.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "Working towards: " + in.Title
	}

	return model.Goal{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Progress:    0,
		Subtasks:    Subtasks(in.Category, duration),
		Notes:       notes,
		Duration:    duration,
		StartDate:   today,
		TargetDate:  model.FormatDate(TargetDate(in.Duration, in.CustomDuration, now)),
		Streak:      0,
		LastUpdated: today,
	}
}

// CheckIn applies a daily check-in at now. It reports false, leaving the goal
// untouched, when the goal was already checked in today.
func CheckIn(goal model.Goal, now time.Time) (model.Goal, bool) {
	today := startOfDay(now)
	if goal.CheckedInOn(today) {
		return goal, false
	}

	yesterday := model.FormatDate(addDays(today, -1))
	if goal.LastUpdated == yesterday {
		goal.Streak++
	} else {
		goal.Streak = 1
	}

	goal.LastUpdated = model.FormatDate(today)
	goal.Progress = min(goal.Progress+checkInProgress, model.MaxProgress)

	return goal, true
}

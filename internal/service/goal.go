package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/mindspace/internal/clock"
	"github.com/templui/mindspace/internal/metrics"
	"github.com/templui/mindspace/internal/model"
	"github.com/templui/mindspace/internal/repository"
	"github.com/templui/mindspace/internal/validation"
)

// CategoryAll disables category filtering in Goals.
const CategoryAll = "All"

// CreateGoalRequest is raw user input for a new goal.
type CreateGoalRequest struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	Duration       string `json:"duration"`
	CustomDuration string `json:"customDuration"`
	Notes          string `json:"notes"`
}

type GoalService struct {
	repo     repository.GoalRepository
	clock    clock.Clock
	location *time.Location
	newID    func() string
}

func NewGoalService(repo repository.GoalRepository, clk clock.Clock, location *time.Location) *GoalService {
	if location == nil {
		location = time.Local
	}
	return &GoalService{
		repo:     repo,
		clock:    clk,
		location: location,
		newID:    func() string { return uuid.New().String() },
	}
}

func (s *GoalService) now() time.Time {
	return s.clock.Now().In(s.location)
}

// Create validates the request and stores a new goal. Validation errors are
// returned before anything is written.
func (s *GoalService) Create(ctx context.Context, req CreateGoalRequest) (*model.Goal, error) {
	title, err := validation.ValidateTitle(req.Title)
	if err != nil {
		metrics.ObserveGoalOperation("create", metrics.OutcomeInvalid)
		return nil, err
	}

	category, err := validation.ParseCategory(req.Category)
	if err != nil {
		metrics.ObserveGoalOperation("create", metrics.OutcomeInvalid)
		return nil, err
	}

	duration := req.Duration
	if duration == "" {
		duration = model.DurationOneMonth
	}

	goal := NewGoal(s.newID(), GoalInput{
		Title:          title,
		Category:       category,
		Duration:       duration,
		CustomDuration: req.CustomDuration,
		Notes:          req.Notes,
	}, s.now())

	err = s.repo.Create(ctx, goal)
	if err != nil {
		metrics.ObserveGoalOperation("create", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	metrics.ObserveGoalOperation("create", metrics.OutcomeOK)
	s.observeCount()
	slog.Info("goal created", "goal_id", goal.ID, "category", goal.Category, "target_date", goal.TargetDate)
	return &goal, nil
}

// CheckIn records today's check-in. It returns nil without error when the
// goal does not exist, and the unchanged goal when it was already checked
// in today.
func (s *GoalService) CheckIn(ctx context.Context, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		metrics.ObserveGoalOperation("check_in", metrics.OutcomeNotFound)
		slog.Debug("check-in for unknown goal ignored", "goal_id", goalID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updated, changed := CheckIn(goal, s.now())
	if !changed {
		metrics.ObserveGoalOperation("check_in", metrics.OutcomeNoop)
		return &goal, nil
	}

	err = s.repo.Update(ctx, updated)
	if errors.Is(err, repository.ErrGoalNotFound) {
		metrics.ObserveGoalOperation("check_in", metrics.OutcomeNotFound)
		return nil, nil
	}
	if err != nil {
		metrics.ObserveGoalOperation("check_in", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to check in goal: %w", err)
	}

	metrics.ObserveGoalOperation("check_in", metrics.OutcomeOK)
	slog.Info("goal checked in", "goal_id", goalID, "streak", updated.Streak, "progress", updated.Progress)
	return &updated, nil
}

// Delete removes the goal and reports whether it existed. Unknown ids are
// ignored without error.
func (s *GoalService) Delete(ctx context.Context, goalID string) (bool, error) {
	err := s.repo.Delete(ctx, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		metrics.ObserveGoalOperation("delete", metrics.OutcomeNotFound)
		slog.Debug("delete for unknown goal ignored", "goal_id", goalID)
		return false, nil
	}
	if err != nil {
		metrics.ObserveGoalOperation("delete", metrics.OutcomeError)
		return false, fmt.Errorf("failed to delete goal: %w", err)
	}

	metrics.ObserveGoalOperation("delete", metrics.OutcomeOK)
	s.observeCount()
	slog.Info("goal deleted", "goal_id", goalID)
	return true, nil
}

// Goals returns a snapshot of all goals, or only those in category.
// Empty or "All" means no filter.
func (s *GoalService) Goals(category string) ([]model.Goal, error) {
	goals := s.repo.Goals()
	if category == "" || category == CategoryAll {
		return goals, nil
	}

	c, err := validation.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Category == c {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func (s *GoalService) ByID(goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Today is the current calendar date in the service timezone.
func (s *GoalService) Today() string {
	return model.FormatDate(s.now())
}

func (s *GoalService) observeCount() {
	metrics.GoalsTotal.Set(float64(len(s.repo.Goals())))
}

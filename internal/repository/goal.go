package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/templui/mindspace/internal/model"
	"github.com/templui/mindspace/internal/storage"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrGoalExists   = errors.New("goal already exists")
	ErrPersist      = errors.New("failed to persist goals")
)

type GoalRepository interface {
	Goals() []model.Goal
	ByID(goalID string) (model.Goal, error)
	Create(ctx context.Context, goal model.Goal) error
	Update(ctx context.Context, goal model.Goal) error
	Delete(ctx context.Context, goalID string) error
}

// goalRepository keeps the whole collection in memory and rewrites the
// stored snapshot after every mutation. Memory is only swapped once the
// store accepted the new snapshot.
type goalRepository struct {
	mu    sync.RWMutex
	store storage.Store
	key   string
	goals []model.Goal
}

// NewGoalRepository loads the snapshot stored under key. A missing record
// yields an empty collection and a corrupt one is discarded.
func NewGoalRepository(ctx context.Context, store storage.Store, key string) (GoalRepository, error) {
	r := &goalRepository{store: store, key: key}

	data, err := store.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	var goals []model.Goal
	err = json.Unmarshal(data, &goals)
	if err != nil {
		slog.Warn("discarding corrupt goals record", "error", err, "key", key)
		delErr := store.Delete(ctx, key)
		if delErr != nil && !errors.Is(delErr, storage.ErrNotFound) {
			slog.Error("failed to delete corrupt goals record", "error", delErr, "key", key)
		}
		return r, nil
	}

	r.goals = goals
	slog.Debug("goals loaded", "key", key, "count", len(goals))
	return r, nil
}

func (r *goalRepository) Goals() []model.Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneGoals(r.goals)
}

func (r *goalRepository) ByID(goalID string) (model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(goalID)
	if i < 0 {
		return model.Goal{}, ErrGoalNotFound
	}
	return r.goals[i].Clone(), nil
}

func (r *goalRepository) Create(ctx context.Context, goal model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(goal.ID) >= 0 {
		return ErrGoalExists
	}

	next := append(cloneGoals(r.goals), goal.Clone())
	return r.commit(ctx, next)
}

func (r *goalRepository) Update(ctx context.Context, goal model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(goal.ID)
	if i < 0 {
		return ErrGoalNotFound
	}

	next := cloneGoals(r.goals)
	next[i] = goal.Clone()
	return r.commit(ctx, next)
}

func (r *goalRepository) Delete(ctx context.Context, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(goalID)
	if i < 0 {
		return ErrGoalNotFound
	}

	next := slices.Delete(cloneGoals(r.goals), i, i+1)
	return r.commit(ctx, next)
}

// commit writes next as the full snapshot, then makes it the in-memory state.
// Callers hold r.mu.
func (r *goalRepository) commit(ctx context.Context, next []model.Goal) error {
	if next == nil {
		next = []model.Goal{}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	err = r.store.Save(ctx, r.key, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	r.goals = next
	return nil
}

func (r *goalRepository) index(goalID string) int {
	return slices.IndexFunc(r.goals, func(g model.Goal) bool {
		return g.ID == goalID
	})
}

func cloneGoals(goals []model.Goal) []model.Goal {
	out := make([]model.Goal, len(goals))
	for i, g := range goals {
		out[i] = g.Clone()
	}
	return out
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/mindspace/internal/model"
	"github.com/templui/mindspace/internal/storage"
)

const key = "mindspace-goals"

type flakyStore struct {
	*storage.MemoryStore
	failSave bool
	failLoad bool
}

func (s *flakyStore) Load(ctx context.Context, k string) ([]byte, error) {
	if s.failLoad {
		return nil, errors.New("connection refused")
	}
	return s.MemoryStore.Load(ctx, k)
}

func (s *flakyStore) Save(ctx context.Context, k string, v []byte) error {
	if s.failSave {
		return errors.New("write rejected")
	}
	return s.MemoryStore.Save(ctx, k, v)
}

func sampleGoals() []model.Goal {
	return []model.Goal{
		{
			ID:          "a",
			Title:       "Run a 5k",
			Category:    model.CategoryHealth,
			Progress:    35,
			Subtasks:    []string{"Week 1: Research and plan approach", "Week 2: Start with small daily habits", "Week 3: Track progress weekly", "Week 4: Adjust routine based on results"},
			Notes:       "Working towards: Run a 5k",
			Duration:    "1 month",
			StartDate:   "2026-10-01",
			TargetDate:  "2026-10-31",
			Streak:      4,
			LastUpdated: "2026-10-18",
		},
		{
			ID:         "b",
			Title:      "Learn Spanish",
			Category:   model.CategoryStudy,
			Subtasks:   []string{"Phase 1: Gather learning resources"},
			Duration:   "1 year",
			StartDate:  "2026-10-01",
			TargetDate: "2027-10-01",
		},
	}
}

func newRepo(t *testing.T, store storage.Store) GoalRepository {
	t.Helper()
	repo, err := NewGoalRepository(context.Background(), store, key)
	require.NoError(t, err)
	return repo
}

func TestNewGoalRepository_EmptyStore(t *testing.T) {
	repo := newRepo(t, storage.NewMemoryStore())
	assert.Empty(t, repo.Goals())
}

func TestNewGoalRepository_CorruptRecordIsDiscarded(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(ctx, key, []byte(`[{"id": "a", "title":`)))

	repo := newRepo(t, store)

	assert.Empty(t, repo.Goals())
	_, err := store.Load(ctx, key)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewGoalRepository_LoadFailure(t *testing.T) {
	store := &flakyStore{MemoryStore: storage.NewMemoryStore(), failLoad: true}

	_, err := NewGoalRepository(context.Background(), store, key)
	require.Error(t, err)
}

func TestGoalRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	repo := newRepo(t, store)
	for _, g := range sampleGoals() {
		require.NoError(t, repo.Create(ctx, g))
	}

	reloaded := newRepo(t, store)
	assert.Equal(t, sampleGoals(), reloaded.Goals())
}

func TestGoalRepository_PersistsFullArray(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := newRepo(t, store)

	require.NoError(t, repo.Create(ctx, sampleGoals()[0]))
	require.NoError(t, repo.Delete(ctx, "a"))

	data, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestGoalRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, storage.NewMemoryStore())

	require.NoError(t, repo.Create(ctx, sampleGoals()[0]))
	require.ErrorIs(t, repo.Create(ctx, sampleGoals()[0]), ErrGoalExists)
	assert.Len(t, repo.Goals(), 1)
}

func TestGoalRepository_UpdateAndDeleteUnknown(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, storage.NewMemoryStore())

	require.ErrorIs(t, repo.Update(ctx, model.Goal{ID: "nope"}), ErrGoalNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "nope"), ErrGoalNotFound)

	_, err := repo.ByID("nope")
	require.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalRepository_DeleteKeepsOthers(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, storage.NewMemoryStore())
	for _, g := range sampleGoals() {
		require.NoError(t, repo.Create(ctx, g))
	}

	require.NoError(t, repo.Delete(ctx, "a"))

	assert.Equal(t, sampleGoals()[1:], repo.Goals())
}

func TestGoalRepository_FailedWriteLeavesMemoryUntouched(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	repo := newRepo(t, store)

	require.NoError(t, repo.Create(ctx, sampleGoals()[0]))
	store.failSave = true

	err := repo.Create(ctx, sampleGoals()[1])
	require.ErrorIs(t, err, ErrPersist)

	updated := sampleGoals()[0]
	updated.Streak = 99
	require.ErrorIs(t, repo.Update(ctx, updated), ErrPersist)
	require.ErrorIs(t, repo.Delete(ctx, "a"), ErrPersist)

	assert.Equal(t, sampleGoals()[:1], repo.Goals())
}

func TestGoalRepository_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, storage.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, sampleGoals()[0]))

	snapshot := repo.Goals()
	snapshot[0].Title = "changed"
	snapshot[0].Subtasks[0] = "changed"

	got, err := repo.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, sampleGoals()[0], got)
}

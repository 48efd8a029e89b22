package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/mindspace/internal/config"
	"github.com/templui/mindspace/internal/service"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		AppEnv:         "test",
		StoreBackend:   backend,
		StoreKey:       "app-test-goals",
		Timezone:       "UTC",
		RateLimitRPS:   10,
		RateLimitBurst: 10,
	}
}

func TestNew_MemoryBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig("memory"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Nil(t, a.DB)
	assert.NotNil(t, a.RateLimiter)

	_, err = a.GoalService.Create(context.Background(), service.CreateGoalRequest{Title: "Walk"})
	require.NoError(t, err)
}

func TestNew_SQLBackendReloadsGoals(t *testing.T) {
	cfg := testConfig("sql")
	cfg.DBDriver = "sqlite"
	cfg.DBConnection = filepath.Join(t.TempDir(), "goals.db")

	first, err := New(context.Background(), cfg)
	require.NoError(t, err)
	_, err = first.GoalService.Create(context.Background(), service.CreateGoalRequest{Title: "Read", Category: "Study"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	goals, err := second.GoalService.Goals(service.CategoryAll)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Read", goals[0].Title)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), testConfig("floppy"))
	assert.Error(t, err)
}

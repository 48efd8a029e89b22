package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_DRIVER", "STORE_BACKEND", "STORE_KEY", "TIMEZONE", "REQUEST_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "sql", cfg.StoreBackend)
	assert.Equal(t, "mindspace-goals", cfg.StoreKey)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.InDelta(t, 5.0, cfg.RateLimitRPS, 0.0001)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "goals")
	t.Setenv("STORE_KEY", "user-42-goals")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3", cfg.StoreBackend)
	assert.Equal(t, "goals", cfg.S3Bucket)
	assert.Equal(t, "user-42-goals", cfg.StoreKey)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{AppEnv: "development", StoreBackend: "sql", StoreKey: "k", Timezone: "UTC"}
	}

	assert.Empty(t, valid().Validate())

	c := valid()
	c.StoreBackend = "redis"
	assert.Len(t, c.Validate(), 1)

	c = valid()
	c.StoreBackend = "s3"
	assert.Contains(t, c.Validate(), "STORE_BACKEND=s3 requires S3_BUCKET")

	c = valid()
	c.AppEnv = "production"
	c.StoreBackend = "memory"
	assert.Len(t, c.Validate(), 1)

	c = valid()
	c.StoreKey = ""
	assert.Len(t, c.Validate(), 1)

	c = valid()
	c.Timezone = "Mars/Olympus"
	assert.Len(t, c.Validate(), 1)
}

func TestLocation_FallsBackToLocal(t *testing.T) {
	c := &Config{Timezone: "Nowhere/Special"}
	assert.Equal(t, time.Local, c.Location())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "12")
	t.Setenv("TEST_BAD_INT", "twelve")
	t.Setenv("TEST_FLOAT", "2.5")
	t.Setenv("TEST_BAD_FLOAT", "x")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BAD_DURATION", "soon")

	assert.Equal(t, "value", envString("TEST_STRING", "def"))
	assert.Equal(t, "def", envString("TEST_MISSING", "def"))

	assert.Equal(t, 12, envInt("TEST_INT", 1))
	assert.Equal(t, 1, envInt("TEST_BAD_INT", 1))
	assert.Equal(t, 1, envInt("TEST_MISSING", 1))

	assert.InDelta(t, 2.5, envFloat("TEST_FLOAT", 1), 0.0001)
	assert.InDelta(t, 1.0, envFloat("TEST_BAD_FLOAT", 1), 0.0001)

	require.Equal(t, 90*time.Second, envDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, envDuration("TEST_BAD_DURATION", time.Second))
}

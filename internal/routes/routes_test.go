package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/mindspace/internal/app"
	"github.com/templui/mindspace/internal/config"
)

func newHandler(t *testing.T, burst int) http.Handler {
	t.Helper()

	a, err := app.New(context.Background(), &config.Config{
		AppEnv:         "test",
		StoreBackend:   "memory",
		StoreKey:       "routes-test",
		Timezone:       "UTC",
		RequestTimeout: time.Second,
		RateLimitRPS:   0.001,
		RateLimitBurst: burst,
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return SetupRoutes(a)
}

func TestSetupRoutes(t *testing.T) {
	h := newHandler(t, 10)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/goals", http.StatusOK},
		{http.MethodGet, "/api/goals/export", http.StatusOK},
		{http.MethodGet, "/api/goals/unknown", http.StatusNotFound},
		{http.MethodGet, "/api/nothing/here", http.StatusNotFound},
		{http.MethodPut, "/api/goals", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSetupRoutes_MetricsExposeRoutePatterns(t *testing.T) {
	h := newHandler(t, 10)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/goals/abc", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="GET /api/goals/{id}"`)
	assert.NotContains(t, rec.Body.String(), "/api/goals/abc")
}

func TestSetupRoutes_RateLimitsMutations(t *testing.T) {
	h := newHandler(t, 1)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(`{"title":"Run"}`))
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

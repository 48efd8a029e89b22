package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/templui/mindspace/internal/app"
	"github.com/templui/mindspace/internal/handler"
	"github.com/templui/mindspace/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	goal := handler.NewGoalHandler(app.GoalService)

	mux := http.NewServeMux()

	// Mutations are rate limited per client IP
	limit := app.RateLimiter.Limit

	// ============================================================================
	// OPERATIONS
	// ============================================================================

	mux.HandleFunc("GET /healthz", home.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// ============================================================================
	// HTML
	// ============================================================================

	mux.HandleFunc("GET /{$}", goal.GoalsPage)
	mux.HandleFunc("POST /goals", limit(goal.CreateForm))
	mux.HandleFunc("POST /goals/{id}/check-in", limit(goal.CheckInForm))
	mux.HandleFunc("POST /goals/{id}/delete", limit(goal.DeleteForm))

	// ============================================================================
	// JSON API
	// ============================================================================

	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("GET /api/goals/export", goal.Export)
	mux.HandleFunc("GET /api/goals/{id}", goal.Get)
	mux.HandleFunc("POST /api/goals", limit(goal.Create))
	mux.HandleFunc("POST /api/goals/{id}/check-in", limit(goal.CheckIn))
	mux.HandleFunc("DELETE /api/goals/{id}", limit(goal.Delete))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Timeout(app.Cfg.RequestTimeout),
		middleware.RequestLogging,
		middleware.Monitor, // Must wrap the mux directly so the matched pattern is visible
	)

	return handler
}

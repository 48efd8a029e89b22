package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/templui/mindspace/internal/model"
	"github.com/templui/mindspace/internal/repository"
	"github.com/templui/mindspace/internal/service"
	"github.com/templui/mindspace/internal/ui"
	"github.com/templui/mindspace/internal/ui/pages"
	"github.com/templui/mindspace/internal/validation"
)

// maxBodyBytes bounds JSON and form bodies.
const maxBodyBytes = 64 << 10

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalResponse struct {
	Goal  *model.Goal  `json:"goal"`
	Goals []model.Goal `json:"goals"`
}

type goalsResponse struct {
	Goals []model.Goal `json:"goals"`
}

// ============================================================================
// JSON API
// ============================================================================

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.Goals(r.URL.Query().Get("category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalsResponse{Goals: goals})
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(goalID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGoalRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	goal, err := h.goalService.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.withGoals(goal))
}

// CheckIn answers 200 with a null goal when the id is unknown.
func (h *GoalHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goalService.CheckIn(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.withGoals(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, err := h.goalService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	goals, _ := h.goalService.Goals(service.CategoryAll)
	writeJSON(w, http.StatusOK, goalsResponse{Goals: goals})
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.Goals(service.CategoryAll)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=goals-export.json")

	err = json.NewEncoder(w).Encode(goals)
	if err != nil {
		slog.Error("failed to encode goals", "error", err)
	}
}

func (h *GoalHandler) withGoals(goal *model.Goal) goalResponse {
	goals, _ := h.goalService.Goals(service.CategoryAll)
	return goalResponse{Goal: goal, Goals: goals}
}

// fail maps service errors onto status codes.
func (h *GoalHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrGoalNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrPersist):
		slog.Error("goal persistence failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, repository.ErrPersist.Error())
	default:
		slog.Error("goal request failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func isValidation(err error) bool {
	return errors.Is(err, validation.ErrTitleRequired) ||
		errors.Is(err, validation.ErrTitleTooLong) ||
		errors.Is(err, validation.ErrInvalidCategory)
}

// ============================================================================
// HTML PAGE + FORMS
// ============================================================================

func (h *GoalHandler) GoalsPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "")
}

func (h *GoalHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = service.CategoryAll
	}

	goals, err := h.goalService.Goals(category)
	if err != nil {
		category = service.CategoryAll
		goals, _ = h.goalService.Goals(category)
		if message == "" {
			message = err.Error()
		}
		if status == http.StatusOK {
			status = http.StatusBadRequest
		}
	} else if c, parseErr := validation.ParseCategory(category); parseErr == nil && category != service.CategoryAll {
		category = string(c)
	}

	ui.RenderStatus(w, r, status, pages.Goals(pages.GoalsView{
		Goals:     goals,
		Category:  category,
		Today:     h.goalService.Today(),
		Error:     message,
		Durations: model.Durations,
	}))
}

func (h *GoalHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	_, err := h.goalService.Create(r.Context(), service.CreateGoalRequest{
		Title:          r.FormValue("title"),
		Category:       r.FormValue("category"),
		Duration:       r.FormValue("duration"),
		CustomDuration: r.FormValue("customDuration"),
		Notes:          r.FormValue("notes"),
	})
	if err != nil {
		h.formFailed(w, r, err)
		return
	}

	redirectHome(w, r)
}

func (h *GoalHandler) CheckInForm(w http.ResponseWriter, r *http.Request) {
	_, err := h.goalService.CheckIn(r.Context(), r.PathValue("id"))
	if err != nil {
		h.formFailed(w, r, err)
		return
	}

	redirectHome(w, r)
}

func (h *GoalHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	_, err := h.goalService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.formFailed(w, r, err)
		return
	}

	redirectHome(w, r)
}

func (h *GoalHandler) formFailed(w http.ResponseWriter, r *http.Request, err error) {
	if isValidation(err) {
		h.renderPage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	slog.Error("goal form failed", "error", err, "path", r.URL.Path)
	h.renderPage(w, r, http.StatusInternalServerError, "Could not save your goals. Please try again.")
}

// redirectHome sends the browser back to the page, keeping the active filter.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	target := "/"
	category := r.URL.Query().Get("category")
	if category != "" && category != service.CategoryAll {
		target += "?category=" + url.QueryEscape(category)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

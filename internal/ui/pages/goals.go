package pages

//go:generate go tool templ generate

import (
	"log/slog"
	"net/url"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/templui/mindspace/internal/markdown"
	"github.com/templui/mindspace/internal/model"
)

type GoalsView struct {
	Goals     []model.Goal
	Category  string // "All" or a model.Category
	Today     string // YYYY-MM-DD in the service timezone
	Error     string
	Durations []string
}

var categoryColors = map[model.Category]string{
	model.CategoryHabit:    "bg-green-100 text-green-700",
	model.CategoryPersonal: "bg-blue-100 text-blue-700",
	model.CategoryHealth:   "bg-pink-100 text-pink-700",
	model.CategoryStudy:    "bg-purple-100 text-purple-700",
}

const badgeBase = "px-3 py-1 rounded-full text-xs font-medium bg-gray-100 text-gray-700"

// CategoryBadgeClass merges the category palette over the neutral badge.
func CategoryBadgeClass(c model.Category) string {
	return twmerge.Merge(badgeBase, categoryColors[c])
}

func filterButtonClass(active bool) string {
	base := "px-4 py-2 rounded-full bg-white/80 text-gray-600"
	if active {
		return twmerge.Merge(base, "bg-blue-500 text-white shadow-lg")
	}
	return base
}

func filterOptions() []string {
	options := []string{"All"}
	for _, c := range model.Categories {
		options = append(options, string(c))
	}
	return options
}

func filterURL(category string) templ.SafeURL {
	return templ.SafeURL("/?category=" + url.QueryEscape(category))
}

// goalActionURL posts back to the goal form routes, keeping the active filter.
func goalActionURL(goalID, action, category string) templ.SafeURL {
	return templ.SafeURL("/goals/" + url.PathEscape(goalID) + "/" + action + "?category=" + url.QueryEscape(category))
}

// notesHTML renders notes as Markdown, falling back to escaped text.
func notesHTML(notes string) string {
	html, err := markdown.Notes(notes)
	if err != nil {
		slog.Warn("failed to render goal notes", "error", err)
		return "<p>" + templ.EscapeString(notes) + "</p>"
	}
	return html
}

package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/templui/mindspace/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const MaxTitleLength = 200

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long (max 200 characters)")
	ErrInvalidCategory = errors.New("category must be one of Habit, Personal, Health, Study")
)

// ValidateTitle trims the goal title and checks it is present and not too long.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return "", ErrTitleRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return "", ErrTitleTooLong
	}

	return trimmed, nil
}

// ParseCategory normalizes user input ("health", " STUDY ") to a Category.
// Empty input yields the default Personal category.
func ParseCategory(raw string) (model.Category, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.CategoryPersonal, nil
	}

	// Casers keep state between calls, so each call gets its own.
	category := model.Category(cases.Title(language.English).String(trimmed))
	if !category.Valid() {
		return "", ErrInvalidCategory
	}

	return category, nil
}

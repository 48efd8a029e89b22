package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/templui/mindspace/internal/model"
)

const (
	daysPerWeek  = 7
	daysPerMonth = 30
	daysPerYear  = 365

	defaultDurationDays = daysPerMonth

	// MaxDurationDays caps any offset so the target date stays representable.
	MaxDurationDays = 100 * daysPerYear
)

// EffectiveDuration substitutes the custom text when the custom selector is chosen.
func EffectiveDuration(selector, custom string) string {
	if selector == model.DurationCustom {
		return custom
	}
	return selector
}

// DurationDays converts a human duration ("3 months", "2 Weeks") to a day offset.
// Months and years are fixed 30 and 365 day approximations. The result never
// exceeds MaxDurationDays.
func DurationDays(duration string) int {
	lower := strings.ToLower(duration)

	switch {
	case strings.Contains(lower, "week"):
		return scaleDays(leadingMagnitude(lower), daysPerWeek)
	case strings.Contains(lower, "month"):
		return scaleDays(leadingMagnitude(lower), daysPerMonth)
	case strings.Contains(lower, "year"):
		return scaleDays(leadingMagnitude(lower), daysPerYear)
	}

	return defaultDurationDays
}

func scaleDays(n, unit int) int {
	if n > MaxDurationDays/unit {
		return MaxDurationDays
	}
	return n * unit
}

// TargetDate resolves the selector and returns the calendar date the goal is due.
func TargetDate(selector, custom string, now time.Time) time.Time {
	return addDays(now, DurationDays(EffectiveDuration(selector, custom)))
}

// leadingMagnitude reads the integer at the start of s. Missing, zero or
// negative magnitudes count as 1; values too large for an int saturate.
func leadingMagnitude(s string) int {
	s = strings.TrimLeft(s, " \t\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return n
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// startOfDay drops the time of day, keeping t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}

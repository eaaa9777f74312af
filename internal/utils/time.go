package utils

import (
	"fmt"
	"time"

	"github.com/jwinters/stint/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats a time as a date string in the standard format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateOf reduces a time to its calendar date as a UTC midnight value.
// ParseDate yields UTC midnights, so dates read from storage and dates taken
// off a wall clock compare in the same zone.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysBetween returns the number of whole calendar days from the earlier
// date to the later one. Both arguments are normalized to midnight first, so
// partial days never count. Returns 0 when to is not after from.
func WholeDaysBetween(from, to time.Time) int {
	fromDay := Midnight(from)
	toDay := Midnight(to)
	if !toDay.After(fromDay) {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// WholeDaysBetweenDates is WholeDaysBetween over standard date strings.
func WholeDaysBetweenDates(fromStr, toStr string) (int, error) {
	from, err := ParseDate(fromStr)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", fromStr, err)
	}
	to, err := ParseDate(toStr)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", toStr, err)
	}
	return WholeDaysBetween(from, to), nil
}

// MinutesBetween returns the whole minutes from start to end, floored at zero
// so that a skewed clock can never produce a negative duration.
func MinutesBetween(start, end time.Time) int {
	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// FormatElapsed renders a minute count as H:MM for display.
func FormatElapsed(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

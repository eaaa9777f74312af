package utils

import (
	"testing"
	"time"
)

func TestWholeDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			"same day",
			time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC),
			0,
		},
		{
			"one day apart at different hours",
			time.Date(2026, 8, 27, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 1, 0, 0, 0, time.UTC),
			1,
		},
		{
			"five days",
			time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC),
			5,
		},
		{
			"reversed order floors to zero",
			time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"across a month boundary",
			time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 2, 18, 0, 0, 0, time.UTC),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeDaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("WholeDaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWholeDaysBetweenDates(t *testing.T) {
	got, err := WholeDaysBetweenDates("2026-08-23", "2026-08-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("expected 5 days, got %d", got)
	}

	if _, err := WholeDaysBetweenDates("not-a-date", "2026-08-28"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDateOf_NormalizesToUTC(t *testing.T) {
	east := time.FixedZone("UTC+5:30", 5*60*60+30*60)
	west := time.FixedZone("UTC-5", -5*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc noon", time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), "2026-08-28"},
		{"early morning east of utc", time.Date(2026, 8, 28, 0, 30, 0, 0, east), "2026-08-28"},
		{"late evening west of utc", time.Date(2026, 8, 28, 23, 30, 0, 0, west), "2026-08-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateOf(tt.in)
			if got.Location() != time.UTC {
				t.Errorf("DateOf returned %v, want UTC", got.Location())
			}
			if FormatDate(got) != tt.want {
				t.Errorf("DateOf = %s, want %s", FormatDate(got), tt.want)
			}
			parsed, err := ParseDate(tt.want)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(parsed) {
				t.Errorf("DateOf = %v, want the parsed date %v", got, parsed)
			}
		})
	}
}

func TestMinutesBetween_FloorsAtZero(t *testing.T) {
	start := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	if got := MinutesBetween(start, start.Add(45*time.Minute)); got != 45 {
		t.Errorf("expected 45 minutes, got %d", got)
	}
	if got := MinutesBetween(start, start.Add(90*time.Second)); got != 1 {
		t.Errorf("expected partial minutes floored to 1, got %d", got)
	}
	if got := MinutesBetween(start, start.Add(-time.Hour)); got != 0 {
		t.Errorf("expected negative interval floored to 0, got %d", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{60, "1:00"},
		{135, "2:15"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.minutes); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

package utils

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays put", time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		{"wednesday rolls back", time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		{"sunday rolls back to previous monday", time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		{"across month boundary", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got := StartOfWeek(tt.in)
		if !got.Equal(tt.want) {
			t.Errorf("%s: StartOfWeek(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC), 0},
		{"tomorrow despite late clock", time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 3, 0, 1, 0, 0, time.UTC), 1},
		{"a week out", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), 7},
		{"past is negative", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), -3},
	}

	for _, tt := range tests {
		if got := DaysUntil(tt.from, tt.to); got != tt.want {
			t.Errorf("%s: DaysUntil = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDaysUntilAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		// US clocks spring forward on 2026-03-08, making that day 23h.
		{"spring forward", time.Date(2026, 3, 7, 10, 0, 0, 0, loc), time.Date(2026, 3, 10, 10, 0, 0, 0, loc), 3},
		{"into the short day", time.Date(2026, 3, 7, 0, 0, 0, 0, loc), time.Date(2026, 3, 8, 0, 0, 0, 0, loc), 1},
		// Clocks fall back on 2026-11-01, making that day 25h.
		{"fall back", time.Date(2026, 10, 31, 12, 0, 0, 0, loc), time.Date(2026, 11, 3, 12, 0, 0, 0, loc), 3},
	}

	for _, tt := range tests {
		if got := DaysUntil(tt.from, tt.to); got != tt.want {
			t.Errorf("%s: DaysUntil = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	in := time.Date(2025, 6, 2, 18, 45, 12, 99, loc)
	got := DateOnly(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("DateOnly kept a clock: %v", got)
	}
	if got.Location() != loc {
		t.Errorf("DateOnly changed location: %v", got.Location())
	}
}

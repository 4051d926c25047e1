package timerange_test

import (
	"errors"
	"testing"
	"time"

	"github.com/arenaku/courtbook/internal/timerange"
)

func TestBuild_WellFormedRange(t *testing.T) {
	start, end, err := timerange.Build("2025-03-10", "09:00-10:30", time.UTC)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	wantStart := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", end, wantEnd)
	}
	if !start.Before(end) {
		t.Fatalf("expected start < end, got %v and %v", start, end)
	}
}

func TestBuild_TrimsRangeParts(t *testing.T) {
	start, end, err := timerange.Build("2025-03-10", " 09:00 - 10:30 ", time.UTC)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if start.Hour() != 9 || end.Hour() != 10 || end.Minute() != 30 {
		t.Fatalf("unexpected times: start=%v end=%v", start, end)
	}
}

func TestBuild_MissingSeparator(t *testing.T) {
	tests := []struct {
		name string
		rng  string
	}{
		{"no separator", "0900 1030"},
		{"empty range", ""},
		{"single time", "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := timerange.Build("2025-03-10", tt.rng, time.UTC)
			if !errors.Is(err, timerange.ErrMissingSeparator) {
				t.Fatalf("expected ErrMissingSeparator, got %v", err)
			}
		})
	}
}

func TestBuild_UnparsableTimes(t *testing.T) {
	tests := []struct {
		name string
		date string
		rng  string
	}{
		{"bad start hour", "2025-03-10", "25:00-10:30"},
		{"bad end minute", "2025-03-10", "09:00-10:75"},
		{"empty end", "2025-03-10", "09:00-"},
		{"empty start", "2025-03-10", "-10:30"},
		{"garbage end", "2025-03-10", "09:00-later"},
		{"invalid date", "2025-02-30", "09:00-10:30"},
		{"empty date", "", "09:00-10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := timerange.Build(tt.date, tt.rng, time.UTC)
			if err == nil {
				t.Fatalf("Build(%q, %q) succeeded, want error", tt.date, tt.rng)
			}
		})
	}
}

package sobriety

import (
	"testing"
	"time"
)

func TestDaysSober(t *testing.T) {
	tests := []struct {
		name      string
		soberDate string
		now       time.Time
		want      int
		wantErr   bool
	}{
		{
			name:      "same day counts zero",
			soberDate: "2026-08-15",
			now:       time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "late last night still counts one day",
			soberDate: "2026-08-14",
			now:       time.Date(2026, 8, 15, 0, 5, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "full week",
			soberDate: "2026-08-08",
			now:       time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
			want:      7,
		},
		{
			name:      "across a month boundary",
			soberDate: "2026-07-31",
			now:       time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
			want:      2,
		},
		{
			name:      "future date clamps to zero",
			soberDate: "2026-09-01",
			now:       time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "garbage date errors",
			soberDate: "not-a-date",
			now:       time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysSober(tt.soberDate, tt.now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("DaysSober(%q) expected error, got %d", tt.soberDate, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DaysSober(%q) returned unexpected error: %v", tt.soberDate, err)
			}
			if got != tt.want {
				t.Errorf("DaysSober(%q) = %d, want %d", tt.soberDate, got, tt.want)
			}
		})
	}

	t.Run("a short DST day still counts as a full day", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		// DST began 2026-03-08; that local day is only 23 hours long.
		now := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)

		got, err := DaysSober("2026-03-07", now)
		if err != nil {
			t.Fatalf("DaysSober() returned unexpected error: %v", err)
		}
		if got != 2 {
			t.Errorf("DaysSober() across spring-forward = %d, want 2", got)
		}
	})

	t.Run("counting is timezone aware", func(t *testing.T) {
		loc := time.FixedZone("UTC+12", 12*60*60)
		// Just past midnight locally; still the previous day in UTC.
		now := time.Date(2026, 8, 15, 0, 10, 0, 0, loc)

		got, err := DaysSober("2026-08-14", now)
		if err != nil {
			t.Fatalf("DaysSober() returned unexpected error: %v", err)
		}
		if got != 1 {
			t.Errorf("DaysSober() = %d in UTC+12, want 1", got)
		}
	})
}

func TestSoberDateFromOffset(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		years  int
		months int
		days   int
		want   string
	}{
		{"zero offset is today", 0, 0, 0, "2026-08-15"},
		{"days only", 0, 0, 10, "2026-08-05"},
		{"months only", 0, 2, 0, "2026-06-15"},
		{"years and days", 1, 0, 5, "2025-08-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SoberDateFromOffset(tt.years, tt.months, tt.days, now)
			if got != tt.want {
				t.Errorf("SoberDateFromOffset(%d, %d, %d) = %q, want %q", tt.years, tt.months, tt.days, got, tt.want)
			}
		})
	}
}

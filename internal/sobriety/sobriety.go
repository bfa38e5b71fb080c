// Package sobriety holds the day-count math for the sobriety tracker.
//
// Day counts use calendar-day subtraction (midnight-normalized dates), never
// exact 24-hour deltas: starting sober last night still counts today as
// day 1.
package sobriety

import (
	"fmt"
	"time"

	"github.com/haven-app/haven/internal/constants"
)

// DaysSober returns the number of calendar days from soberDate (YYYY-MM-DD)
// through now, inclusive of partial days on both ends.
func DaysSober(soberDate string, now time.Time) (int, error) {
	start, err := time.ParseInLocation(constants.DateFormat, soberDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid sober date %q: %w", soberDate, err)
	}

	// Both dates are re-anchored to UTC midnights before subtracting, so a
	// DST transition (a 23- or 25-hour local day) cannot skew the count.
	startDay := utcMidnight(start)
	today := utcMidnight(now)

	days := int(today.Sub(startDay).Hours() / 24)
	if days < 0 {
		return 0, nil
	}
	return days, nil
}

// SoberDateFromOffset computes the sober date by subtracting a user-entered
// years/months/days offset from now, returned as a YYYY-MM-DD string.
func SoberDateFromOffset(years, months, days int, now time.Time) string {
	return now.AddDate(-years, -months, -days).Format(constants.DateFormat)
}

// utcMidnight maps a time to midnight UTC of its local calendar date,
// giving every day a fixed 24-hour length for subtraction.
func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

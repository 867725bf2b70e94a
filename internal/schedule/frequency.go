package schedule

import (
	"fmt"
	"time"

	"billkit/internal/domain"
)

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Occurrence returns the n-th generation date counted from start (n = 0 is start).
// Monthly and yearly steps are anchored on start's day-of-month and clamped to
// the last day of shorter months, so Jan 31 → Feb 28/29 → Mar 31 and
// Feb 29 → Feb 28 in non-leap years.
func Occurrence(start time.Time, freq domain.Frequency, n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, fmt.Errorf("occurrence %d: %w", n, domain.ErrInvalidSchedule)
	}
	start = DateOf(start)
	switch freq {
	case domain.FrequencyDaily:
		return start.AddDate(0, 0, n), nil
	case domain.FrequencyWeekly:
		return start.AddDate(0, 0, 7*n), nil
	case domain.FrequencyMonthly:
		return addMonthsClamped(start, n), nil
	case domain.FrequencyYearly:
		return addMonthsClamped(start, 12*n), nil
	default:
		return time.Time{}, fmt.Errorf("frequency %q: %w", freq, domain.ErrInvalidFrequency)
	}
}

// Next advances a single frequency step from t.
func Next(t time.Time, freq domain.Frequency) (time.Time, error) {
	return Occurrence(t, freq, 1)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

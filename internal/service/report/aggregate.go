package report

import (
	"fmt"
	"math"
	"time"
)

const dayKeyLayout = "2006-01-02"

func dayKey(d time.Time) string {
	return d.Format(dayKeyLayout)
}

// formatOrdinalDate renders a date as "1st July".
func formatOrdinalDate(d time.Time) string {
	day := d.Day()
	suffix := "th"
	switch {
	case day >= 11 && day <= 13:
		// 11th, 12th, 13th
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s %s", day, suffix, d.Month().String())
}

// formatClock renders a punch time as HH:MM:SS, or "" when absent.
func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// isoWeekKey is the "YYYY-Www" bucket key per ISO-8601 week numbering.
func isoWeekKey(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// workedHours computes a day's hours from the punch extremes, rounded to two
// decimals. It is nil unless both punches exist and the OUT is strictly
// after the IN; such days contribute nothing to the hour totals.
func workedHours(firstIn, lastOut *time.Time) *float64 {
	if firstIn == nil || lastOut == nil || !lastOut.After(*firstIn) {
		return nil
	}
	h := roundHours(lastOut.Sub(*firstIn).Hours())
	return &h
}

// lateness compares the first IN against the day's shift start plus grace.
// Minutes late count from the shift start itself, not from the grace limit.
func lateness(day time.Time, firstIn *time.Time, shiftStart *time.Duration, grace time.Duration) (isLate int, lateBy int) {
	if firstIn == nil || shiftStart == nil {
		return 0, 0
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, firstIn.Location())
	shiftStartAt := midnight.Add(*shiftStart)
	if firstIn.After(shiftStartAt.Add(grace)) {
		return 1, int(math.Round(firstIn.Sub(shiftStartAt).Minutes()))
	}
	return 0, 0
}

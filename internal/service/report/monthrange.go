package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
)

type monthLayout struct {
	layout  string
	hasYear bool
}

// Priority order matters: year-bearing layouts first, then bare month names.
// Month-only tokens resolve against the current year.
var monthLayouts = []monthLayout{
	{"Jan 2006", true},
	{"January 2006", true},
	{"2006-1", true},
	{"1-2006", true},
	{"Jan", false},
	{"January", false},
}

// parseMonthRange resolves a free-form month token into the first and last
// day of that calendar month. An empty token means the month of now.
func parseMonthRange(token string, now time.Time) (time.Time, time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		start, end := monthBounds(now.Year(), now.Month())
		return start, end, nil
	}

	for _, l := range monthLayouts {
		t, err := time.Parse(l.layout, token)
		if err != nil {
			continue
		}
		year := now.Year()
		if l.hasYear {
			year = t.Year()
		}
		start, end := monthBounds(year, t.Month())
		return start, end, nil
	}

	// Last resort: pull a 4-digit year out of the token; a month name must
	// still parse on its own or the token is rejected.
	year := now.Year()
	var month time.Month
	monthFound := false
	for _, part := range strings.Fields(strings.ReplaceAll(token, "-", " ")) {
		// Only a bare 4-digit run counts as a year; "+123" does not.
		if len(part) == 4 && validator.IsNumeric(part) {
			year, _ = strconv.Atoi(part)
			continue
		}
		if monthFound {
			continue
		}
		for _, layout := range []string{"Jan", "January"} {
			if t, parseErr := time.Parse(layout, part); parseErr == nil {
				month = t.Month()
				monthFound = true
				break
			}
		}
	}
	if !monthFound {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", report.ErrInvalidMonthFormat, token)
	}

	start, end := monthBounds(year, month)
	return start, end, nil
}

func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

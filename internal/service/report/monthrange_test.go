package report

import (
	"errors"
	"testing"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseMonthRange_Formats(t *testing.T) {
	cases := []struct {
		name      string
		token     string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "abbreviated month with year",
			token:     "Mar 2024",
			wantStart: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "full month with year",
			token:     "March 2024",
			wantStart: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "numeric year-month leap february",
			token:     "2024-02",
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "numeric month-year",
			token:     "02-2023",
			wantStart: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "bare month name resolves against current year",
			token:     "January",
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "month name with dashed year recovered by the fallback",
			token:     "July-2023",
			wantStart: time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, time.July, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "signed 4-char part is not a year",
			token:     "+123 Jan",
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "empty token means current month",
			token:     "",
			wantStart: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end, err := parseMonthRange(c.token, testNow)
			require.NoError(t, err)
			assert.Equal(t, c.wantStart, start)
			assert.Equal(t, c.wantEnd, end)
		})
	}
}

func TestParseMonthRange_Invalid(t *testing.T) {
	for _, token := range []string{"garbage", "13-13", "not a month 999"} {
		_, _, err := parseMonthRange(token, testNow)
		require.Error(t, err, "token %q", token)
		assert.True(t, errors.Is(err, report.ErrInvalidMonthFormat))
	}
}

func TestParseMonthRange_EndIsLastDayOfMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		start, end, err := parseMonthRange(month.String()+" 2023", testNow)
		require.NoError(t, err)
		assert.Equal(t, 1, start.Day())
		// The day after the end date rolls into the next month
		assert.Equal(t, time.Month(month%12+1), end.AddDate(0, 0, 1).Month())
	}
}

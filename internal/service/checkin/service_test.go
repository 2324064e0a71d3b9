package checkin

import (
	"testing"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/checkin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punch(logType string, at time.Time) checkin.Checkin {
	return checkin.Checkin{
		EmployeeID: "EMP-00001",
		LogType:    logType,
		PunchedAt:  at,
	}
}

func TestFoldAttendanceDays(t *testing.T) {
	// Newest first, as the repository returns them
	punches := []checkin.Checkin{
		punch(checkin.LogTypeOut, time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)),
		punch(checkin.LogTypeIn, time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC)),
		punch(checkin.LogTypeOut, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)),
		punch(checkin.LogTypeIn, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)),
		punch(checkin.LogTypeOut, time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)),
		punch(checkin.LogTypeIn, time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)),
	}

	records := foldAttendanceDays("EMP-00001", punches, 7)
	require.Len(t, records, 2)

	// Punches fold newest first, so the latest IN and OUT of the day win
	day1 := records[0]
	assert.Equal(t, "2024-03-05", day1.Date)
	require.NotNil(t, day1.InTime)
	assert.Equal(t, "13:00:00", *day1.InTime)
	require.NotNil(t, day1.OutTime)
	assert.Equal(t, "18:00:00", *day1.OutTime)
	assert.Equal(t, "Present", day1.Status)
	require.NotNil(t, day1.WorkingHours)
	assert.Equal(t, "05:00:00", *day1.WorkingHours)

	day2 := records[1]
	assert.Equal(t, "2024-03-04", day2.Date)
	require.NotNil(t, day2.WorkingHours)
	assert.Equal(t, "09:00:00", *day2.WorkingHours)
}

func TestFoldAttendanceDays_OnlyIn(t *testing.T) {
	punches := []checkin.Checkin{
		punch(checkin.LogTypeIn, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)),
	}

	records := foldAttendanceDays("EMP-00001", punches, 7)
	require.Len(t, records, 1)
	assert.Equal(t, "Present", records[0].Status)
	require.NotNil(t, records[0].InTime)
	assert.Nil(t, records[0].OutTime)
	assert.Nil(t, records[0].WorkingHours)
}

func TestFoldAttendanceDays_OnlyOutStaysAbsent(t *testing.T) {
	punches := []checkin.Checkin{
		punch(checkin.LogTypeOut, time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)),
	}

	records := foldAttendanceDays("EMP-00001", punches, 7)
	require.Len(t, records, 1)
	assert.Equal(t, "Absent", records[0].Status)
	assert.Nil(t, records[0].InTime)
	require.NotNil(t, records[0].OutTime)
	assert.Equal(t, "18:00:00", *records[0].OutTime)
	assert.Nil(t, records[0].WorkingHours)
}

func TestFoldAttendanceDays_LatestInWins(t *testing.T) {
	punches := []checkin.Checkin{
		punch(checkin.LogTypeOut, time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)),
		punch(checkin.LogTypeIn, time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC)),
		punch(checkin.LogTypeIn, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)),
	}

	records := foldAttendanceDays("EMP-00001", punches, 7)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].InTime)
	assert.Equal(t, "13:00:00", *records[0].InTime)
	require.NotNil(t, records[0].WorkingHours)
	assert.Equal(t, "05:00:00", *records[0].WorkingHours)
}

func TestFoldAttendanceDays_Limit(t *testing.T) {
	var punches []checkin.Checkin
	for day := 10; day >= 1; day-- {
		punches = append(punches,
			punch(checkin.LogTypeOut, time.Date(2024, 3, day, 18, 0, 0, 0, time.UTC)),
			punch(checkin.LogTypeIn, time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC)),
		)
	}

	records := foldAttendanceDays("EMP-00001", punches, 7)
	require.Len(t, records, 7)
	assert.Equal(t, "2024-03-10", records[0].Date)
	assert.Equal(t, "2024-03-04", records[6].Date)
}

func TestFoldAttendanceDays_Empty(t *testing.T) {
	records := foldAttendanceDays("EMP-00001", nil, 7)
	assert.Empty(t, records)
}

func TestFoldAttendanceDays_FractionalHours(t *testing.T) {
	punches := []checkin.Checkin{
		punch(checkin.LogTypeOut, time.Date(2024, 3, 5, 17, 45, 30, 0, time.UTC)),
		punch(checkin.LogTypeIn, time.Date(2024, 3, 5, 9, 10, 0, 0, time.UTC)),
	}

	records := foldAttendanceDays("EMP-00001", punches, 7)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].WorkingHours)
	assert.Equal(t, "08:35:30", *records[0].WorkingHours)
}

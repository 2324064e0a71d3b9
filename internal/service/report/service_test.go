package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordStore struct {
	employees   []report.Employee
	assignments []report.ShiftAssignment
	windows     []report.ShiftWindow
	holidays    []report.Holiday
	leaves      []report.Leave
	checkins    []report.CheckinDay

	failOn string
}

var errStoreDown = errors.New("connection refused")

func (f *fakeRecordStore) ListActiveEmployees(ctx context.Context, employeeID *string) ([]report.Employee, error) {
	if f.failOn == "employees" {
		return nil, errStoreDown
	}
	if employeeID == nil {
		return f.employees, nil
	}
	for _, e := range f.employees {
		if e.ID == *employeeID {
			return []report.Employee{e}, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordStore) ListActiveShiftAssignments(ctx context.Context, employeeIDs []string) ([]report.ShiftAssignment, error) {
	if f.failOn == "assignments" {
		return nil, errStoreDown
	}
	return f.assignments, nil
}

func (f *fakeRecordStore) ListShiftWindows(ctx context.Context) ([]report.ShiftWindow, error) {
	if f.failOn == "windows" {
		return nil, errStoreDown
	}
	return f.windows, nil
}

func (f *fakeRecordStore) ListHolidays(ctx context.Context, holidayLists []string, start, end time.Time) ([]report.Holiday, error) {
	if f.failOn == "holidays" {
		return nil, errStoreDown
	}
	return f.holidays, nil
}

func (f *fakeRecordStore) ListApprovedLeaves(ctx context.Context, employeeIDs []string, start, end time.Time) ([]report.Leave, error) {
	if f.failOn == "leaves" {
		return nil, errStoreDown
	}
	return f.leaves, nil
}

func (f *fakeRecordStore) ListDailyCheckins(ctx context.Context, employeeIDs []string, start, end time.Time) ([]report.CheckinDay, error) {
	if f.failOn == "checkins" {
		return nil, errStoreDown
	}
	return f.checkins, nil
}

func newTestService(store *fakeRecordStore) *reportServiceImpl {
	return &reportServiceImpl{
		store: store,
		now:   func() time.Time { return testNow },
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func durPtr(d time.Duration) *time.Duration { return &d }

func TestMonthlyAttendance_FullMonth(t *testing.T) {
	holidayList := "India 2024"
	store := &fakeRecordStore{
		employees: []report.Employee{
			{ID: "EMP-00001", Name: "Alice Fernandes", HolidayList: &holidayList},
		},
		assignments: []report.ShiftAssignment{
			{EmployeeID: "EMP-00001", ShiftType: "Day"},
		},
		windows: []report.ShiftWindow{
			{Name: "Day", StartTime: durPtr(9 * time.Hour), EndTime: durPtr(18 * time.Hour)},
		},
		holidays: []report.Holiday{
			{HolidayList: holidayList, Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Description: "Holi", WeeklyOff: false},
			{HolidayList: holidayList, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Description: "Sunday", WeeklyOff: true},
		},
		leaves: []report.Leave{
			{
				EmployeeID:  "EMP-00001",
				FromDate:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				ToDate:      time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
				LeaveType:   "Casual Leave",
				Description: "Family function",
				HalfDay:     false,
			},
		},
		checkins: []report.CheckinDay{
			{
				EmployeeID: "EMP-00001",
				Date:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
				FirstIn:    timePtr(time.Date(2024, 3, 4, 9, 10, 0, 0, time.UTC)),
				LastOut:    timePtr(time.Date(2024, 3, 4, 18, 10, 0, 0, time.UTC)),
			},
		},
	}

	svc := newTestService(store)
	got, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{
		Month:        "Mar 2024",
		GraceMinutes: 5,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	summary, ok := got["EMP-00001"]
	require.True(t, ok)
	assert.Equal(t, "Alice Fernandes", summary.EmployeeName)
	assert.Equal(t, holidayList, summary.HolidayList)

	// One punch day, two leave days, one holiday, one weekly off
	require.Len(t, summary.Days, 5)

	punchDay := summary.Days[0]
	assert.Equal(t, "4th March", punchDay.Date)
	assert.Equal(t, "09:10:00", punchDay.CheckIn)
	assert.Equal(t, "18:10:00", punchDay.CheckOut)
	require.NotNil(t, punchDay.TotalHours)
	assert.Equal(t, 9.0, *punchDay.TotalHours)
	assert.Equal(t, 1, punchDay.IsLate)
	assert.Equal(t, 10, punchDay.LateByMinutes)

	leaveDay := summary.Days[1]
	assert.Equal(t, "5th March", leaveDay.Date)
	assert.Equal(t, "Casual Leave", leaveDay.LeaveType)
	assert.Equal(t, "Family function", leaveDay.LeaveDescription)
	assert.Nil(t, leaveDay.TotalHours)

	holidayDay := summary.Days[3]
	assert.Equal(t, "8th March", holidayDay.Date)
	assert.Equal(t, "Holi", holidayDay.HolidayName)

	weeklyOff := summary.Days[4]
	assert.Equal(t, "10th March", weeklyOff.Date)
	assert.Equal(t, "WO", weeklyOff.HolidayName)

	// 2024-03-04 is the Monday of ISO week 10
	assert.Equal(t, map[string]float64{"2024-W10": 9.0}, summary.WeeklyWorkingHours)
	assert.Equal(t, 9.0, summary.TotalWorkingHours)
}

func TestMonthlyAttendance_WeeklySumsMatchTotal(t *testing.T) {
	store := &fakeRecordStore{
		employees: []report.Employee{{ID: "EMP-00002", Name: "Bobby"}},
		checkins: []report.CheckinDay{
			{
				EmployeeID: "EMP-00002",
				Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				FirstIn:    timePtr(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
				LastOut:    timePtr(time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC)),
			},
			{
				EmployeeID: "EMP-00002",
				Date:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
				FirstIn:    timePtr(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)),
				LastOut:    timePtr(time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)),
			},
		},
	}

	svc := newTestService(store)
	got, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{Month: "2024-03"})
	require.NoError(t, err)

	summary := got["EMP-00002"]
	var weeklySum float64
	for _, hours := range summary.WeeklyWorkingHours {
		weeklySum += hours
	}
	assert.InDelta(t, summary.TotalWorkingHours, weeklySum, 0.001)
	assert.Len(t, summary.WeeklyWorkingHours, 2)
}

func TestMonthlyAttendance_LeaveClippedToMonth(t *testing.T) {
	store := &fakeRecordStore{
		employees: []report.Employee{{ID: "EMP-00003", Name: "Carol"}},
		leaves: []report.Leave{
			{
				EmployeeID: "EMP-00003",
				FromDate:   time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
				ToDate:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				LeaveType:  "Sick Leave",
			},
		},
	}

	svc := newTestService(store)
	got, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{Month: "Mar 2024"})
	require.NoError(t, err)

	summary := got["EMP-00003"]
	require.Len(t, summary.Days, 2)
	assert.Equal(t, "1st March", summary.Days[0].Date)
	assert.Equal(t, "2nd March", summary.Days[1].Date)
}

func TestMonthlyAttendance_FirstLeaveWinsPerDay(t *testing.T) {
	overlap := []report.Leave{
		{
			EmployeeID: "EMP-00004",
			FromDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			ToDate:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			LeaveType:  "Casual Leave",
		},
		{
			EmployeeID: "EMP-00004",
			FromDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			ToDate:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			LeaveType:  "Sick Leave",
		},
	}
	store := &fakeRecordStore{
		employees: []report.Employee{{ID: "EMP-00004", Name: "Dinesh"}},
		leaves:    overlap,
	}

	svc := newTestService(store)
	got, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{Month: "Mar 2024"})
	require.NoError(t, err)

	summary := got["EMP-00004"]
	require.Len(t, summary.Days, 1)
	assert.Equal(t, "Casual Leave", summary.Days[0].LeaveType)
}

func TestMonthlyAttendance_SingleEmployeeFilter(t *testing.T) {
	store := &fakeRecordStore{
		employees: []report.Employee{
			{ID: "EMP-00001", Name: "Alice Fernandes"},
			{ID: "EMP-00002", Name: "Bobby"},
		},
	}

	svc := newTestService(store)
	got, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{
		Employee: "EMP-00002",
		Month:    "Mar 2024",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bobby", got["EMP-00002"].EmployeeName)
}

func TestMonthlyAttendance_NoEmployees(t *testing.T) {
	svc := newTestService(&fakeRecordStore{})
	got, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{Month: "Mar 2024"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMonthlyAttendance_Idempotent(t *testing.T) {
	holidayList := "India 2024"
	store := &fakeRecordStore{
		employees: []report.Employee{{ID: "EMP-00001", Name: "Alice Fernandes", HolidayList: &holidayList}},
		holidays: []report.Holiday{
			{HolidayList: holidayList, Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Description: "Holi"},
		},
	}
	svc := newTestService(store)
	filter := report.MonthlyAttendanceFilter{Month: "Mar 2024"}

	first, err := svc.MonthlyAttendance(context.Background(), filter)
	require.NoError(t, err)
	second, err := svc.MonthlyAttendance(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMonthlyAttendance_StoreFailure(t *testing.T) {
	for _, failOn := range []string{"employees", "assignments", "windows", "holidays", "leaves", "checkins"} {
		holidayList := "India 2024"
		store := &fakeRecordStore{
			employees: []report.Employee{{ID: "EMP-00001", Name: "Alice Fernandes", HolidayList: &holidayList}},
			failOn:    failOn,
		}
		svc := newTestService(store)

		_, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{Month: "Mar 2024"})
		require.Error(t, err, "failure on %s", failOn)
		assert.True(t, errors.Is(err, report.ErrDataSourceUnavailable), "failure on %s", failOn)
	}
}

func TestMonthlyAttendance_InvalidMonth(t *testing.T) {
	svc := newTestService(&fakeRecordStore{})
	_, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{Month: "bogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, report.ErrInvalidMonthFormat))
}

func TestMonthlyAttendance_NegativeGrace(t *testing.T) {
	svc := newTestService(&fakeRecordStore{})
	_, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceFilter{
		Month:        "Mar 2024",
		GraceMinutes: -1,
	})
	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

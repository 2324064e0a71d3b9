package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
)

type reportServiceImpl struct {
	store report.RecordStore
	now   func() time.Time
}

func NewReportService(store report.RecordStore) report.ReportService {
	return &reportServiceImpl{
		store: store,
		now:   time.Now,
	}
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", report.ErrDataSourceUnavailable, op, err)
}

// MonthlyAttendance implements report.ReportService.
func (s *reportServiceImpl) MonthlyAttendance(ctx context.Context, filter report.MonthlyAttendanceFilter) (map[string]report.EmployeeSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	monthStart, monthEnd, err := parseMonthRange(filter.Month, s.now())
	if err != nil {
		return nil, err
	}

	var employeeID *string
	if filter.Employee != "" {
		employeeID = &filter.Employee
	}

	employees, err := s.store.ListActiveEmployees(ctx, employeeID)
	if err != nil {
		return nil, storeFailure("list employees", err)
	}

	result := make(map[string]report.EmployeeSummary, len(employees))
	if len(employees) == 0 {
		return result, nil
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	assignments, err := s.store.ListActiveShiftAssignments(ctx, employeeIDs)
	if err != nil {
		return nil, storeFailure("list shift assignments", err)
	}
	// Last read wins when an employee carries several active assignments;
	// precedence between them was never defined upstream.
	shiftByEmployee := make(map[string]string, len(assignments))
	for _, a := range assignments {
		shiftByEmployee[a.EmployeeID] = a.ShiftType
	}

	windows, err := s.store.ListShiftWindows(ctx)
	if err != nil {
		return nil, storeFailure("list shift windows", err)
	}
	shiftStartByName := make(map[string]*time.Duration, len(windows))
	for _, w := range windows {
		shiftStartByName[w.Name] = w.StartTime
	}

	holidaysByList, err := s.loadHolidays(ctx, employees, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	leaves, err := s.store.ListApprovedLeaves(ctx, employeeIDs, monthStart, monthEnd)
	if err != nil {
		return nil, storeFailure("list leaves", err)
	}
	leavesByEmployee := make(map[string]map[string]report.Leave)
	for _, l := range leaves {
		from := l.FromDate
		if from.Before(monthStart) {
			from = monthStart
		}
		to := l.ToDate
		if to.After(monthEnd) {
			to = monthEnd
		}
		byDay := leavesByEmployee[l.EmployeeID]
		if byDay == nil {
			byDay = make(map[string]report.Leave)
			leavesByEmployee[l.EmployeeID] = byDay
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			key := dayKey(d)
			// First application seen keeps the day
			if _, taken := byDay[key]; !taken {
				byDay[key] = l
			}
		}
	}

	checkins, err := s.store.ListDailyCheckins(ctx, employeeIDs, monthStart, monthEnd)
	if err != nil {
		return nil, storeFailure("list checkins", err)
	}
	checkinsByEmployee := make(map[string]map[string]report.CheckinDay)
	for _, c := range checkins {
		byDay := checkinsByEmployee[c.EmployeeID]
		if byDay == nil {
			byDay = make(map[string]report.CheckinDay)
			checkinsByEmployee[c.EmployeeID] = byDay
		}
		byDay[dayKey(c.Date)] = c
	}

	grace := time.Duration(filter.GraceMinutes) * time.Minute

	for _, emp := range employees {
		var shiftStart *time.Duration
		if shiftName, ok := shiftByEmployee[emp.ID]; ok {
			shiftStart = shiftStartByName[shiftName]
		}

		var holidays map[string]report.Holiday
		if emp.HolidayList != nil {
			holidays = holidaysByList[*emp.HolidayList]
		}

		result[emp.ID] = buildEmployeeSummary(
			emp,
			holidays,
			checkinsByEmployee[emp.ID],
			leavesByEmployee[emp.ID],
			shiftStart,
			grace,
		)
	}

	return result, nil
}

func (s *reportServiceImpl) loadHolidays(ctx context.Context, employees []report.Employee, start, end time.Time) (map[string]map[string]report.Holiday, error) {
	seen := make(map[string]struct{})
	var lists []string
	for _, emp := range employees {
		if emp.HolidayList == nil || *emp.HolidayList == "" {
			continue
		}
		if _, ok := seen[*emp.HolidayList]; ok {
			continue
		}
		seen[*emp.HolidayList] = struct{}{}
		lists = append(lists, *emp.HolidayList)
	}

	byList := make(map[string]map[string]report.Holiday)
	if len(lists) == 0 {
		return byList, nil
	}

	holidays, err := s.store.ListHolidays(ctx, lists, start, end)
	if err != nil {
		return nil, storeFailure("list holidays", err)
	}
	for _, h := range holidays {
		byDay := byList[h.HolidayList]
		if byDay == nil {
			byDay = make(map[string]report.Holiday)
			byList[h.HolidayList] = byDay
		}
		byDay[dayKey(h.Date)] = h
	}
	return byList, nil
}

// buildEmployeeSummary synthesizes day records for every date that has at
// least one of holiday, punch or leave data, then accumulates ISO-week and
// monthly hour totals. Days with none of the three are not materialized.
func buildEmployeeSummary(
	emp report.Employee,
	holidays map[string]report.Holiday,
	checkins map[string]report.CheckinDay,
	leaves map[string]report.Leave,
	shiftStart *time.Duration,
	grace time.Duration,
) report.EmployeeSummary {
	dayKeys := make(map[string]struct{}, len(holidays)+len(checkins)+len(leaves))
	for k := range holidays {
		dayKeys[k] = struct{}{}
	}
	for k := range checkins {
		dayKeys[k] = struct{}{}
	}
	for k := range leaves {
		dayKeys[k] = struct{}{}
	}
	orderedKeys := make([]string, 0, len(dayKeys))
	for k := range dayKeys {
		orderedKeys = append(orderedKeys, k)
	}
	sort.Strings(orderedKeys)

	days := make([]report.DayRecord, 0, len(orderedKeys))
	weeklyHours := make(map[string]float64)
	totalHours := 0.0

	for _, key := range orderedKeys {
		day, _ := time.Parse(dayKeyLayout, key)

		record := report.DayRecord{
			Date: formatOrdinalDate(day),
		}

		if h, ok := holidays[key]; ok {
			if h.WeeklyOff {
				record.HolidayName = "WO"
			} else {
				record.HolidayName = h.Description
			}
		}

		if c, ok := checkins[key]; ok {
			record.CheckIn = formatClock(c.FirstIn)
			record.CheckOut = formatClock(c.LastOut)
			record.TotalHours = workedHours(c.FirstIn, c.LastOut)
			record.IsLate, record.LateByMinutes = lateness(day, c.FirstIn, shiftStart, grace)
		}

		if record.TotalHours != nil {
			weeklyHours[isoWeekKey(day)] += *record.TotalHours
			totalHours += *record.TotalHours
		}

		if l, ok := leaves[key]; ok {
			record.LeaveType = l.LeaveType
			record.LeaveDescription = l.Description
			if l.HalfDay {
				record.HalfDay = 1
			}
		}

		days = append(days, record)
	}

	for week, hours := range weeklyHours {
		weeklyHours[week] = roundHours(hours)
	}

	holidayList := ""
	if emp.HolidayList != nil {
		holidayList = *emp.HolidayList
	}

	return report.EmployeeSummary{
		EmployeeName:       emp.Name,
		HolidayList:        holidayList,
		WeeklyWorkingHours: weeklyHours,
		TotalWorkingHours:  roundHours(totalHours),
		Days:               days,
	}
}

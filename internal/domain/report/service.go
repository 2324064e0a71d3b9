package report

import (
	"context"
)

type ReportService interface {
	// MonthlyAttendance builds the per-day attendance/holiday/leave records
	// plus weekly and monthly hour totals for every matched employee,
	// keyed by employee ID. No matching employees is an empty map.
	MonthlyAttendance(ctx context.Context, filter MonthlyAttendanceFilter) (map[string]EmployeeSummary, error)
}

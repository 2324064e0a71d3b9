package report

import (
	"context"
	"time"
)

// RecordStore is the read-only data access capability the monthly report is
// built on. Every query is scoped to the requested employees and date range.
type RecordStore interface {
	// ListActiveEmployees returns active employees, optionally restricted
	// to a single employee ID. No match is an empty slice, not an error.
	ListActiveEmployees(ctx context.Context, employeeID *string) ([]Employee, error)

	// ListActiveShiftAssignments returns assignments with status Active
	// for the given employees.
	ListActiveShiftAssignments(ctx context.Context, employeeIDs []string) ([]ShiftAssignment, error)

	// ListShiftWindows returns the timing for every shift type.
	ListShiftWindows(ctx context.Context) ([]ShiftWindow, error)

	// ListHolidays returns holidays of the given holiday lists whose date
	// falls inside [start, end].
	ListHolidays(ctx context.Context, holidayLists []string, start, end time.Time) ([]Holiday, error)

	// ListApprovedLeaves returns approved leave applications overlapping
	// [start, end] for the given employees.
	ListApprovedLeaves(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Leave, error)

	// ListDailyCheckins returns per (employee, date) first-IN/last-OUT
	// extremes within [start, end].
	ListDailyCheckins(ctx context.Context, employeeIDs []string, start, end time.Time) ([]CheckinDay, error)
}

package report

import (
	"time"
)

// Read models consumed by the monthly attendance report. All of them are
// loaded fresh on every invocation; the report never writes.

type Employee struct {
	ID          string
	Name        string
	HolidayList *string
}

type ShiftAssignment struct {
	EmployeeID string
	ShiftType  string
}

// ShiftWindow carries a shift type's start and end as offsets from midnight.
type ShiftWindow struct {
	Name      string
	StartTime *time.Duration
	EndTime   *time.Duration
}

type Holiday struct {
	HolidayList string
	Date        time.Time
	Description string
	WeeklyOff   bool
}

type Leave struct {
	EmployeeID  string
	FromDate    time.Time
	ToDate      time.Time
	LeaveType   string
	Description string
	HalfDay     bool
}

// CheckinDay is the per-day punch extreme for one employee: the earliest IN
// and the latest OUT within that calendar date.
type CheckinDay struct {
	EmployeeID string
	Date       time.Time
	FirstIn    *time.Time
	LastOut    *time.Time
}

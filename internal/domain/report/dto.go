package report

import (
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
)

type MonthlyAttendanceFilter struct {
	// Employee restricts the report to one employee ID; empty means all
	// active employees.
	Employee string
	// Month is a free-form month token ("Mar 2024", "2024-03", "March",
	// ...); empty means the current month.
	Month string
	// GraceMinutes is the lateness tolerance after shift start.
	GraceMinutes int
}

func (f *MonthlyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must be a non-negative integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayRecord is one synthesized day for one employee. Holiday, leave and
// punch data are independent fields; a day can carry all three at once.
type DayRecord struct {
	Date             string   `json:"date"`
	HolidayName      string   `json:"holiday_name"`
	CheckIn          string   `json:"check_in"`
	CheckOut         string   `json:"check_out"`
	TotalHours       *float64 `json:"total_hours"`
	LeaveType        string   `json:"leave_type"`
	LeaveDescription string   `json:"leave_description"`
	HalfDay          int      `json:"half_day"`
	IsLate           int      `json:"is_late"`
	LateByMinutes    int      `json:"late_by_minutes"`
}

type EmployeeSummary struct {
	EmployeeName       string             `json:"employee_name"`
	HolidayList        string             `json:"holiday_list"`
	WeeklyWorkingHours map[string]float64 `json:"weekly_working_hours"`
	TotalWorkingHours  float64            `json:"total_working_hours"`
	Days               []DayRecord        `json:"days"`
}

package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgtype"
)

type reportStore struct {
	db *database.DB
}

// NewReportStore returns the PostgreSQL-backed record store for the monthly
// attendance report. All queries are read-only and scoped to the requested
// employees and date range.
func NewReportStore(db *database.DB) report.RecordStore {
	return &reportStore{db: db}
}

// ListActiveEmployees implements report.RecordStore.
func (r *reportStore) ListActiveEmployees(ctx context.Context, employeeID *string) ([]report.Employee, error) {
	query := `
		SELECT id, employee_name, holiday_list_id
		FROM employees
		WHERE status = 'Active'
	`
	args := []interface{}{}
	if employeeID != nil {
		query += " AND id = $1"
		args = append(args, *employeeID)
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []report.Employee
	for rows.Next() {
		var emp report.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.HolidayList); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// ListActiveShiftAssignments implements report.RecordStore.
func (r *reportStore) ListActiveShiftAssignments(ctx context.Context, employeeIDs []string) ([]report.ShiftAssignment, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT employee_id, shift_type
		FROM shift_assignments
		WHERE status = 'Active'
		  AND employee_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []report.ShiftAssignment
	for rows.Next() {
		var a report.ShiftAssignment
		if err := rows.Scan(&a.EmployeeID, &a.ShiftType); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// ListShiftWindows implements report.RecordStore.
func (r *reportStore) ListShiftWindows(ctx context.Context) ([]report.ShiftWindow, error) {
	query := `
		SELECT name, start_time, end_time
		FROM shift_types
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	defer rows.Close()

	var windows []report.ShiftWindow
	for rows.Next() {
		var w report.ShiftWindow
		var start, end pgtype.Time
		if err := rows.Scan(&w.Name, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		w.StartTime = timeOfDay(start)
		w.EndTime = timeOfDay(end)
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// ListHolidays implements report.RecordStore.
func (r *reportStore) ListHolidays(ctx context.Context, holidayLists []string, start, end time.Time) ([]report.Holiday, error) {
	if len(holidayLists) == 0 {
		return nil, nil
	}

	query := `
		SELECT holiday_list_id, holiday_date, COALESCE(description, ''), weekly_off
		FROM holidays
		WHERE holiday_list_id = ANY($1)
		  AND holiday_date BETWEEN $2 AND $3
	`

	rows, err := r.db.Query(ctx, query, holidayLists, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []report.Holiday
	for rows.Next() {
		var h report.Holiday
		if err := rows.Scan(&h.HolidayList, &h.Date, &h.Description, &h.WeeklyOff); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		h.Description = strings.TrimSpace(h.Description)
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// ListApprovedLeaves implements report.RecordStore.
func (r *reportStore) ListApprovedLeaves(ctx context.Context, employeeIDs []string, start, end time.Time) ([]report.Leave, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT employee_id, from_date, to_date, leave_type,
		       COALESCE(description, ''), half_day
		FROM leave_applications
		WHERE status = 'Approved'
		  AND employee_id = ANY($1)
		  AND from_date <= $3
		  AND to_date >= $2
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []report.Leave
	for rows.Next() {
		var l report.Leave
		if err := rows.Scan(&l.EmployeeID, &l.FromDate, &l.ToDate, &l.LeaveType, &l.Description, &l.HalfDay); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		l.Description = strings.TrimSpace(l.Description)
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListDailyCheckins implements report.RecordStore.
func (r *reportStore) ListDailyCheckins(ctx context.Context, employeeIDs []string, start, end time.Time) ([]report.CheckinDay, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT
			employee_id,
			DATE(punched_at) AS work_date,
			MIN(punched_at) FILTER (WHERE log_type = 'IN')  AS first_in,
			MAX(punched_at) FILTER (WHERE log_type = 'OUT') AS last_out
		FROM employee_checkins
		WHERE employee_id = ANY($1)
		  AND DATE(punched_at) BETWEEN $2 AND $3
		GROUP BY employee_id, DATE(punched_at)
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily checkins: %w", err)
	}
	defer rows.Close()

	var days []report.CheckinDay
	for rows.Next() {
		var d report.CheckinDay
		if err := rows.Scan(&d.EmployeeID, &d.Date, &d.FirstIn, &d.LastOut); err != nil {
			return nil, fmt.Errorf("failed to scan checkin day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// timeOfDay converts a TIME column value into an offset from midnight.
func timeOfDay(t pgtype.Time) *time.Duration {
	if !t.Valid {
		return nil
	}
	d := time.Duration(t.Microseconds) * time.Microsecond
	return &d
}

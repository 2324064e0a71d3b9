package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/leave"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, application leave.LeaveApplication) (leave.LeaveApplication, error) {
	application.ID = uuid.New().String()

	query := `
		INSERT INTO leave_applications (
			id, employee_id, from_date, to_date, leave_type, description,
			total_leave_days, leave_approver, status, posting_date, half_day,
			company
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		application.ID, application.EmployeeID, application.FromDate,
		application.ToDate, application.LeaveType, application.Description,
		application.TotalLeaveDays, application.LeaveApprover,
		application.Status, application.PostingDate, application.HalfDay,
		application.Company,
	)
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return application, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	query := `
		SELECT id, employee_id, from_date, to_date, leave_type, description,
		       total_leave_days, leave_approver, status, posting_date,
		       half_day, company
		FROM leave_applications
		WHERE id = $1
	`

	var app leave.LeaveApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.EmployeeID, &app.FromDate, &app.ToDate, &app.LeaveType,
		&app.Description, &app.TotalLeaveDays, &app.LeaveApprover,
		&app.Status, &app.PostingDate, &app.HalfDay, &app.Company,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrLeaveApplicationNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application: %w", err)
	}

	return app, nil
}

// ListByApprover implements leave.LeaveRepository.
func (r *leaveRepository) ListByApprover(ctx context.Context, approver string) ([]leave.LeaveApplication, error) {
	query := `
		SELECT id, employee_id, from_date, to_date, leave_type, description,
		       total_leave_days, leave_approver, status, posting_date,
		       half_day, company
		FROM leave_applications
		WHERE leave_approver = $1
		ORDER BY posting_date DESC
	`
	return r.list(ctx, query, approver)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveApplication, error) {
	query := `
		SELECT id, employee_id, from_date, to_date, leave_type, description,
		       total_leave_days, leave_approver, status, posting_date,
		       half_day, company
		FROM leave_applications
		WHERE employee_id = $1
		ORDER BY posting_date DESC
	`
	return r.list(ctx, query, employeeID)
}

func (r *leaveRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.LeaveApplication
	for rows.Next() {
		var app leave.LeaveApplication
		if err := rows.Scan(
			&app.ID, &app.EmployeeID, &app.FromDate, &app.ToDate,
			&app.LeaveType, &app.Description, &app.TotalLeaveDays,
			&app.LeaveApprover, &app.Status, &app.PostingDate, &app.HalfDay,
			&app.Company,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `
		UPDATE leave_applications
		SET status = $2
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update leave application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveApplicationNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/checkin"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type checkinRepository struct {
	db *database.DB
}

func NewCheckinRepository(db *database.DB) checkin.CheckinRepository {
	return &checkinRepository{db: db}
}

const checkinColumns = `
	c.id, c.employee_id, e.employee_name, c.log_type, c.punched_at,
	c.device_id, c.latitude, c.longitude, c.regularise_time,
	c.regularise_approver, c.regularise_status
`

// Create implements checkin.CheckinRepository.
func (r *checkinRepository) Create(ctx context.Context, c checkin.Checkin) (checkin.Checkin, error) {
	c.ID = uuid.New().String()

	query := `
		INSERT INTO employee_checkins (
			id, employee_id, log_type, punched_at, device_id, latitude,
			longitude
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.EmployeeID, c.LogType, c.PunchedAt, c.DeviceID,
		c.Latitude, c.Longitude,
	)
	if err != nil {
		return checkin.Checkin{}, fmt.Errorf("failed to create checkin: %w", err)
	}

	return c, nil
}

// GetByID implements checkin.CheckinRepository.
func (r *checkinRepository) GetByID(ctx context.Context, id string) (checkin.Checkin, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM employee_checkins c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	var c checkin.Checkin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.EmployeeID, &c.EmployeeName, &c.LogType, &c.PunchedAt,
		&c.DeviceID, &c.Latitude, &c.Longitude, &c.RegulariseTime,
		&c.RegulariseApprover, &c.RegulariseStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkin.Checkin{}, checkin.ErrCheckinNotFound
		}
		return checkin.Checkin{}, fmt.Errorf("failed to get checkin: %w", err)
	}

	return c, nil
}

// LastLogType implements checkin.CheckinRepository.
func (r *checkinRepository) LastLogType(ctx context.Context, employeeID string) (string, error) {
	query := `
		SELECT log_type
		FROM employee_checkins
		WHERE employee_id = $1
		ORDER BY punched_at DESC
		LIMIT 1
	`

	var logType string
	err := r.db.QueryRow(ctx, query, employeeID).Scan(&logType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last log type: %w", err)
	}
	return logType, nil
}

// ListRecent implements checkin.CheckinRepository.
func (r *checkinRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]checkin.Checkin, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM employee_checkins c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.employee_id = $1
		ORDER BY c.punched_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, employeeID, limit)
}

// ListPunchesDesc implements checkin.CheckinRepository.
func (r *checkinRepository) ListPunchesDesc(ctx context.Context, employeeID string) ([]checkin.Checkin, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM employee_checkins c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.employee_id = $1
		ORDER BY c.punched_at DESC
	`
	return r.list(ctx, query, employeeID)
}

// ListOpenRegularise implements checkin.CheckinRepository.
func (r *checkinRepository) ListOpenRegularise(ctx context.Context, approver string, limit int) ([]checkin.Checkin, error) {
	query := `
		SELECT ` + checkinColumns + `
		FROM employee_checkins c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.regularise_approver = $1
		  AND c.regularise_status = 'Open'
		ORDER BY c.punched_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, approver, limit)
}

func (r *checkinRepository) list(ctx context.Context, query string, args ...interface{}) ([]checkin.Checkin, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}
	defer rows.Close()

	var checkins []checkin.Checkin
	for rows.Next() {
		var c checkin.Checkin
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.EmployeeName, &c.LogType, &c.PunchedAt,
			&c.DeviceID, &c.Latitude, &c.Longitude, &c.RegulariseTime,
			&c.RegulariseApprover, &c.RegulariseStatus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// SetRegulariseRequest implements checkin.CheckinRepository.
func (r *checkinRepository) SetRegulariseRequest(ctx context.Context, id string, newTime time.Time) error {
	query := `
		UPDATE employee_checkins
		SET regularise_time = $2,
		    regularise_status = 'Open'
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, newTime)
	if err != nil {
		return fmt.Errorf("failed to set regularise request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkin.ErrCheckinNotFound
	}
	return nil
}

// UpdateRegulariseStatus implements checkin.CheckinRepository.
func (r *checkinRepository) UpdateRegulariseStatus(ctx context.Context, id string, status string) error {
	query := `
		UPDATE employee_checkins
		SET regularise_status = $2
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update regularise status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkin.ErrCheckinNotFound
	}
	return nil
}

// ApplyRegulariseTime implements checkin.CheckinRepository.
func (r *checkinRepository) ApplyRegulariseTime(ctx context.Context, id string, punchedAt time.Time) error {
	query := `
		UPDATE employee_checkins
		SET punched_at = $2,
		    regularise_status = 'Approved'
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, punchedAt)
	if err != nil {
		return fmt.Errorf("failed to apply regularise time: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkin.ErrCheckinNotFound
	}
	return nil
}

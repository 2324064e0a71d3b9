package checkin

import (
	"context"
	"time"
)

type CheckinRepository interface {
	// Create inserts a new punch
	Create(ctx context.Context, c Checkin) (Checkin, error)

	// GetByID retrieves one punch
	GetByID(ctx context.Context, id string) (Checkin, error)

	// LastLogType returns the most recent punch type for an employee, or
	// "" if the employee never punched.
	LastLogType(ctx context.Context, employeeID string) (string, error)

	// ListRecent retrieves the latest punches for an employee, newest
	// first.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Checkin, error)

	// ListPunchesDesc retrieves all punches for an employee, newest first.
	ListPunchesDesc(ctx context.Context, employeeID string) ([]Checkin, error)

	// SetRegulariseRequest records the requested time and reopens the
	// request.
	SetRegulariseRequest(ctx context.Context, id string, newTime time.Time) error

	// ListOpenRegularise retrieves open regularise requests for an
	// approver, newest first.
	ListOpenRegularise(ctx context.Context, approver string, limit int) ([]Checkin, error)

	// UpdateRegulariseStatus sets only the regularise status.
	UpdateRegulariseStatus(ctx context.Context, id string, status string) error

	// ApplyRegulariseTime copies the regularised time onto the punch and
	// marks the request approved.
	ApplyRegulariseTime(ctx context.Context, id string, punchedAt time.Time) error
}

package leave

import (
	"context"
)

type LeaveRepository interface {
	// Create inserts a new leave application
	Create(ctx context.Context, application LeaveApplication) (LeaveApplication, error)

	// GetByID retrieves one application
	GetByID(ctx context.Context, id string) (LeaveApplication, error)

	// ListByApprover retrieves applications routed to an approver, newest
	// posting first
	ListByApprover(ctx context.Context, approver string) ([]LeaveApplication, error)

	// ListByEmployee retrieves an employee's applications, newest posting
	// first
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveApplication, error)

	// UpdateStatus sets the status of one application
	UpdateStatus(ctx context.Context, id string, status string) error
}

package leave

import (
	"context"
)

type LeaveService interface {
	// CreateApplication files a new application with status Open and
	// today's posting date.
	CreateApplication(ctx context.Context, req CreateLeaveRequest) (LeaveApplicationResponse, error)

	// ListForApprover returns the applications routed to an approver.
	ListForApprover(ctx context.Context, approver string) ([]LeaveApplicationResponse, error)

	// ListForEmployee returns an employee's applications.
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveApplicationResponse, error)

	// UpdateStatus moves an application to a new status.
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveApplicationResponse, error)
}

package checkin

import (
	"context"
)

type CheckinService interface {
	// Punch creates a new check-in, alternating IN/OUT from the
	// employee's last punch.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// RecentCheckins returns the employee's latest punches.
	RecentCheckins(ctx context.Context, employeeID string) ([]CheckinResponse, error)

	// AttendanceLog derives the employee's latest attendance days from
	// raw punches.
	AttendanceLog(ctx context.Context, employeeID string) (AttendanceLogResponse, error)

	// RequestRegularise records a requested punch correction.
	RequestRegularise(ctx context.Context, req RegulariseRequest) (CheckinResponse, error)

	// RegulariseQueue lists open correction requests for an approver.
	RegulariseQueue(ctx context.Context, approver string) ([]CheckinResponse, error)

	// DecideRegularise approves or rejects a correction request. Approval
	// rewrites the punch time.
	DecideRegularise(ctx context.Context, req RegulariseDecisionRequest) (RegulariseDecisionResponse, error)
}

package leave

import (
	"time"
)

type LeaveApplication struct {
	ID             string
	EmployeeID     string
	FromDate       time.Time
	ToDate         time.Time
	LeaveType      string
	Description    *string
	TotalLeaveDays float64
	LeaveApprover  *string
	Status         string
	PostingDate    time.Time
	HalfDay        bool
	Company        *string
}

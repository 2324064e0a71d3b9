package leave

import (
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
)

type LeaveApplicationResponse struct {
	ID             string  `json:"name"`
	EmployeeID     string  `json:"employee"`
	FromDate       string  `json:"from_date"`
	ToDate         string  `json:"to_date"`
	LeaveType      string  `json:"leave_type"`
	Description    *string `json:"description"`
	TotalLeaveDays float64 `json:"total_leave_days"`
	LeaveApprover  *string `json:"leave_approver"`
	Status         string  `json:"status"`
	PostingDate    string  `json:"posting_date"`
}

type CreateLeaveRequest struct {
	EmployeeID  string  `json:"employee"`
	LeaveType   string  `json:"leave_type"`
	FromDate    string  `json:"from_date"`
	ToDate      string  `json:"to_date"`
	Company     *string `json:"company,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	validStatuses := []string{"Open", "Approved", "Rejected", "Cancelled"}
	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Open, Approved, Rejected, Cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

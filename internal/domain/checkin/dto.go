package checkin

import (
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID string   `json:"employee"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID      string `json:"name"`
	LogType string `json:"log_type"`
	Message string `json:"message"`
}

type CheckinResponse struct {
	ID                 string  `json:"name"`
	EmployeeID         string  `json:"employee"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	LogType            string  `json:"log_type"`
	PunchedAt          string  `json:"time"`
	RegulariseTime     *string `json:"regularise_time,omitempty"`
	RegulariseApprover *string `json:"regularise_approver,omitempty"`
	RegulariseStatus   *string `json:"regularise_status,omitempty"`
}

type RegulariseRequest struct {
	ID      string `json:"-"`
	NewTime string `json:"new_time"`
}

func (r *RegulariseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDateTime(r.NewTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "new_time",
			Message: "new_time must be a valid timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegulariseDecisionRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *RegulariseDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegulariseDecisionResponse struct {
	ID               string  `json:"name"`
	Action           string  `json:"action"`
	PunchedAt        string  `json:"time"`
	RegulariseTime   *string `json:"regularise_time"`
	RegulariseStatus string  `json:"regularise_status"`
}

// AttendanceDay is one derived day in the recent attendance log.
type AttendanceDay struct {
	EmployeeID   string  `json:"employee"`
	Date         string  `json:"date"`
	InTime       *string `json:"in_time"`
	OutTime      *string `json:"out_time"`
	Status       string  `json:"status"`
	WorkingHours *string `json:"working_hours"`
}

type AttendanceLogResponse struct {
	EmployeeID string          `json:"employee"`
	Records    []AttendanceDay `json:"records"`
}

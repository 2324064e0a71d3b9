package checkin

import (
	"time"
)

const (
	LogTypeIn  = "IN"
	LogTypeOut = "OUT"
)

// Regularise request lifecycle
const (
	RegulariseOpen     = "Open"
	RegulariseApproved = "Approved"
	RegulariseRejected = "Rejected"
)

type Checkin struct {
	ID                 string
	EmployeeID         string
	EmployeeName       *string
	LogType            string
	PunchedAt          time.Time
	DeviceID           string
	Latitude           *float64
	Longitude          *float64
	RegulariseTime     *time.Time
	RegulariseApprover *string
	RegulariseStatus   *string
}

package checkin

import "errors"

var (
	ErrCheckinNotFound = errors.New("checkin not found")

	// ErrNoRegulariseTime is returned when approving a regularise request
	// that never recorded a requested time.
	ErrNoRegulariseTime = errors.New("regularise time is empty")
)

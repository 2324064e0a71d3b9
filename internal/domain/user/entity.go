package user

import (
	"time"
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PushDevice is a registered push-notification target for a user.
type PushDevice struct {
	ID          string
	UserID      string
	DeviceToken string
	CreatedAt   time.Time
}

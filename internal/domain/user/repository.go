package user

import (
	"context"
)

type UserRepository interface {
	// GetByEmail retrieves one user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// UpdatePassword replaces the user's password hash
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// HasPushDevice reports whether the device token is already
	// registered
	HasPushDevice(ctx context.Context, deviceToken string) (bool, error)

	// SavePushDevice registers a push-notification device for the user
	SavePushDevice(ctx context.Context, device PushDevice) error
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/auth"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/user"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, employee_id, created_at,
		       updated_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.EmployeeID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// HasPushDevice implements user.UserRepository.
func (r *userRepository) HasPushDevice(ctx context.Context, deviceToken string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM push_devices WHERE device_token = $1
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, deviceToken).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check push device: %w", err)
	}
	return exists, nil
}

// SavePushDevice implements user.UserRepository.
func (r *userRepository) SavePushDevice(ctx context.Context, device user.PushDevice) error {
	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	query := `
		INSERT INTO push_devices (id, user_id, device_token, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (device_token) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, device.ID, device.UserID, device.DeviceToken); err != nil {
		return fmt.Errorf("failed to save push device: %w", err)
	}
	return nil
}

package auth

import (
	"context"
)

type AuthService interface {
	// Login verifies credentials, optionally registers a push device, and
	// issues access and refresh tokens.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes the presented access token.
	Logout(ctx context.Context, accessToken string) error

	// GenerateOTP creates a short-lived verification code and emails it.
	GenerateOTP(ctx context.Context, req GenerateOTPRequest) error

	// ValidateOTP consumes a code and returns a password reset key.
	ValidateOTP(ctx context.Context, req ValidateOTPRequest) (ValidateOTPResponse, error)

	// ResetPassword sets a new password using a reset key.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	// LoginWithGoogleEmail issues tokens for an existing user matched by
	// a verified Google email.
	LoginWithGoogleEmail(ctx context.Context, email string) (LoginResponse, error)
}

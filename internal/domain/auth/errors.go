package auth

import "errors"

// Auth domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrOTPExpired         = errors.New("otp expired or not generated")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrInvalidResetKey    = errors.New("invalid or expired password reset key")
	ErrGoogleNotEnabled   = errors.New("google sign-in is not configured")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
)

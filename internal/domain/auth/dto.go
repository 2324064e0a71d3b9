package auth

import (
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DeviceToken *string `json:"device_token,omitempty"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	FullName    string  `json:"full_name"`
	EmployeeID  *string `json:"employee_id"`
	ExpiresIn   int64   `json:"expires_in"`

	// Refresh token travels as an HttpOnly cookie, never in the body
	RefreshToken string `json:"-"`
	RefreshExp   int64  `json:"-"`
}

type GenerateOTPRequest struct {
	Email string `json:"email"`
}

func (r *GenerateOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ValidateOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *ValidateOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.OTP) != 4 || !validator.IsNumeric(r.OTP) {
		errs = append(errs, validator.ValidationError{
			Field:   "otp",
			Message: "otp must be a 4-digit code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ValidateOTPResponse struct {
	PasswordResetKey string `json:"pwd_reset_key"`
}

type ResetPasswordRequest struct {
	Key         string `json:"key"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	}

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

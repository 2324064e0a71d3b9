package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/auth"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/user"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/email"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo     user.UserRepository
	jwtService   jwt.Service
	emailService email.EmailService
	otps         *otpStore
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, emailService email.EmailService) auth.AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		otps:         newOTPStore(),
	}
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if req.DeviceToken != nil && *req.DeviceToken != "" {
		if err := s.registerDevice(ctx, u.ID, *req.DeviceToken); err != nil {
			// Push registration must not block a valid login.
			slog.Warn("Failed to register push device", "user_id", u.ID, "error", err)
		}
	}

	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(accessToken)
	return nil
}

// GenerateOTP implements auth.AuthService.
func (s *authServiceImpl) GenerateOTP(ctx context.Context, req auth.GenerateOTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The account must exist, but codes are only hinted at via email so
	// the endpoint does not leak which addresses are registered.
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			slog.Info("OTP requested for unknown email", "email", req.Email)
			return nil
		}
		return err
	}

	code, err := s.otps.GenerateOTP(req.Email)
	if err != nil {
		return err
	}

	return s.emailService.SendOTP(req.Email, code, int(otpTTL.Seconds()))
}

// ValidateOTP implements auth.AuthService.
func (s *authServiceImpl) ValidateOTP(ctx context.Context, req auth.ValidateOTPRequest) (auth.ValidateOTPResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.ValidateOTPResponse{}, err
	}

	if err := s.otps.VerifyOTP(req.Email, req.OTP); err != nil {
		return auth.ValidateOTPResponse{}, err
	}

	key, err := s.otps.IssueResetKey(req.Email)
	if err != nil {
		return auth.ValidateOTPResponse{}, err
	}

	return auth.ValidateOTPResponse{PasswordResetKey: key}, nil
}

// ResetPassword implements auth.AuthService.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emailAddr, ok := s.otps.ConsumeResetKey(req.Key)
	if !ok {
		return auth.ErrInvalidResetKey
	}

	u, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, u.ID, string(hash))
}

// LoginWithGoogleEmail implements auth.AuthService.
func (s *authServiceImpl) LoginWithGoogleEmail(ctx context.Context, email string) (auth.LoginResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	return s.issueTokens(u)
}

func (s *authServiceImpl) registerDevice(ctx context.Context, userID, deviceToken string) error {
	exists, err := s.userRepo.HasPushDevice(ctx, deviceToken)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.userRepo.SavePushDevice(ctx, user.PushDevice{
		UserID:      userID,
		DeviceToken: deviceToken,
	})
}

func (s *authServiceImpl) issueTokens(u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		FullName:     u.FullName,
		EmployeeID:   u.EmployeeID,
		ExpiresIn:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}

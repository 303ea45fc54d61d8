package user

import (
	"context"
	"time"

	userRepo "tourbook/database/repository/user"
	"tourbook/models"
)

type UserService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, actor models.Actor) error
	UpdateUser(ctx context.Context, actor models.Actor, userID string, req models.UserUpdateRequest) (*models.User, error)
	GetUser(ctx context.Context, actor models.Actor, userID string) (*models.User, error)
	GetAllUsers(ctx context.Context, actor models.Actor) ([]models.User, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// TokenCache mirrors the hash of each user's active token.
type TokenCache interface {
	Store(ctx context.Context, userID, tokenHash string) error
	Forget(ctx context.Context, userID string) error
}

// OTPSender delivers password recovery codes.
type OTPSender interface {
	SendPasswordResetOTP(ctx context.Context, email, name, otp string, ttl time.Duration) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Cache    TokenCache
	OTP      OTPSender
	TokenTTL time.Duration
	OTPTTL   time.Duration

	now func() time.Time
}

func (s *DefaultUserService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.TokenTTL
}

func (s *DefaultUserService) otpTTL() time.Duration {
	if s.OTPTTL <= 0 {
		return 10 * time.Minute
	}
	return s.OTPTTL
}

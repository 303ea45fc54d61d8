package user

import (
	"context"
	"strings"

	"tourbook/models"
	"tourbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const otpLength = 6

var errInvalidOTP = utils.InvalidInput("otp", "invalid or expired otp")

// ForgotPassword issues a recovery code for a registered email. Unknown
// emails succeed silently.
func (s *DefaultUserService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	logger := utils.GetLogger()

	email := normalizeEmail(req.Email)
	if email == "" {
		return utils.InvalidInput("email", "email is required")
	}
	if !utils.IsEmail(email) {
		return utils.InvalidInput("email", "email must be a valid email address")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return utils.Internal("failed to look up user", err)
	}
	if u == nil {
		logger.Debug("Password reset requested for unknown email")
		return nil
	}

	otp, err := utils.GenerateNumericOTP(otpLength)
	if err != nil {
		return utils.Internal("failed to generate otp", err)
	}
	otpHash, err := hashSecret(otp)
	if err != nil {
		return utils.Internal("failed to generate otp", err)
	}
	expiry := s.clock().Add(s.otpTTL())

	if err := s.Repo.UpdateFields(ctx, u.ID, bson.M{"otp": otpHash, "otpExpiry": expiry}); err != nil {
		return utils.Internal("failed to store otp", err)
	}
	if err := s.OTP.SendPasswordResetOTP(ctx, u.Email, u.Name, otp, s.otpTTL()); err != nil {
		return utils.Upstream("failed to send otp", err)
	}

	logger.Info("Password reset code issued", zap.String("userId", u.ID))
	return nil
}

// ResetPassword replaces the password when the recovery code matches and
// ends every existing session.
func (s *DefaultUserService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	email := normalizeEmail(req.Email)
	otp := strings.TrimSpace(req.OTP)
	switch {
	case email == "":
		return utils.InvalidInput("email", "email is required")
	case otp == "":
		return utils.InvalidInput("otp", "otp is required")
	case req.NewPassword == "":
		return utils.InvalidInput("newPassword", "newPassword is required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return utils.Internal("failed to look up user", err)
	}
	if u == nil || u.OTPExpiry == nil || s.clock().After(*u.OTPExpiry) || !secretMatches(u.OTP, otp) {
		return errInvalidOTP
	}

	if err := VerifyPasswordComplexity(req.NewPassword); err != nil {
		return err
	}
	hash, err := hashSecret(req.NewPassword)
	if err != nil {
		return utils.Internal("failed to reset password", err)
	}

	if err := s.Repo.UpdateFields(ctx, u.ID, bson.M{"passwordHash": hash}, "otp", "otpExpiry", "tokenHash"); err != nil {
		return utils.Internal("failed to reset password", err)
	}
	s.forgetToken(ctx, u.ID)

	utils.GetLogger().Info("Password reset", zap.String("userId", u.ID))
	return nil
}

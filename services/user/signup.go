package user

import (
	"context"
	"errors"
	"strings"

	userRepo "tourbook/database/repository/user"
	"tourbook/models"
	"tourbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Signup registers a new account with the user role.
func (s *DefaultUserService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	switch {
	case name == "":
		return nil, utils.InvalidInput("name", "name is required")
	case email == "":
		return nil, utils.InvalidInput("email", "email is required")
	case req.Password == "":
		return nil, utils.InvalidInput("password", "password is required")
	case !utils.IsEmail(email):
		return nil, utils.InvalidInput("email", "email must be a valid email address")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.Internal("failed to check for existing user", err)
	}
	if existing != nil {
		return nil, utils.Conflict("email already registered")
	}

	hash, err := hashSecret(req.Password)
	if err != nil {
		return nil, utils.Internal("registration failed", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, utils.Conflict("email already registered")
		}
		return nil, utils.Internal("registration failed", err)
	}

	utils.GetLogger().Info("User registered", zap.String("userId", u.ID))
	return u, nil
}

package user

import (
	"context"
	"errors"
	"strings"

	userRepo "tourbook/database/repository/user"
	"tourbook/models"
	"tourbook/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateUser changes name, email or password. Users may only edit
// themselves; admins may edit anyone. Roles are not editable here.
func (s *DefaultUserService) UpdateUser(ctx context.Context, actor models.Actor, userID string, req models.UserUpdateRequest) (*models.User, error) {
	if !actor.CanAccess(userID) {
		return nil, utils.Forbidden("cannot update another user")
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, utils.NotFound("user not found")
	}

	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, utils.InvalidInput("name", "name cannot be empty")
		}
		set["name"] = name
		u.Name = name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if !utils.IsEmail(email) {
			return nil, utils.InvalidInput("email", "email must be a valid email address")
		}
		if email != u.Email {
			other, err := s.Repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, utils.Internal("failed to check email", err)
			}
			if other != nil && other.ID != u.ID {
				return nil, utils.Conflict("email already registered")
			}
			set["email"] = email
			u.Email = email
		}
	}
	if req.Password != nil {
		if err := VerifyPasswordComplexity(*req.Password); err != nil {
			return nil, err
		}
		hash, err := hashSecret(*req.Password)
		if err != nil {
			return nil, utils.Internal("failed to update password", err)
		}
		set["passwordHash"] = hash
		u.PasswordHash = hash
	}

	if len(set) == 0 {
		return u, nil
	}
	if err := s.Repo.UpdateFields(ctx, u.ID, set); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, utils.Conflict("email already registered")
		}
		return nil, utils.Internal("failed to update user", err)
	}
	return u, nil
}

// GetUser returns a user profile to that user or an admin.
func (s *DefaultUserService) GetUser(ctx context.Context, actor models.Actor, userID string) (*models.User, error) {
	if !actor.CanAccess(userID) {
		return nil, utils.Forbidden("cannot view another user")
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.Internal("failed to load user", err)
	}
	if u == nil {
		return nil, utils.NotFound("user not found")
	}
	return u, nil
}

// GetAllUsers lists every account. Admin only.
func (s *DefaultUserService) GetAllUsers(ctx context.Context, actor models.Actor) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, utils.Forbidden("admin access required")
	}
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list users", err)
	}
	return users, nil
}

package user

import (
	"context"

	"tourbook/models"
	"tourbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Login verifies credentials and issues a token. Only the most recently
// issued token stays valid.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, utils.InvalidInput("email", "email is required")
	}
	if req.Password == "" {
		return nil, utils.InvalidInput("password", "password is required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.Internal("login failed", err)
	}
	if u == nil {
		return nil, utils.NotFound("user not found")
	}
	if !secretMatches(u.PasswordHash, req.Password) {
		return nil, utils.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), s.tokenTTL())
	if err != nil {
		return nil, utils.Internal("failed to generate token", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateFields(ctx, u.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, utils.Internal("failed to store session", err)
	}
	if s.Cache != nil {
		if err := s.Cache.Store(ctx, u.ID, tokenHash); err != nil {
			utils.GetLogger().Warn("Auth cache write failed", zap.String("userId", u.ID), zap.Error(err))
		}
	}

	resp := &models.AuthResponse{Token: token}
	resp.User.ID = u.ID
	resp.User.Name = u.Name
	resp.User.Email = u.Email
	resp.User.Role = u.Role
	return resp, nil
}

// Logout revokes the actor's active token.
func (s *DefaultUserService) Logout(ctx context.Context, actor models.Actor) error {
	if actor.UserID == "" {
		return utils.Unauthorized("authentication required")
	}
	if err := s.Repo.UpdateFields(ctx, actor.UserID, nil, "tokenHash"); err != nil {
		return utils.Internal("failed to revoke session", err)
	}
	s.forgetToken(ctx, actor.UserID)
	return nil
}

func (s *DefaultUserService) forgetToken(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Forget(ctx, userID); err != nil {
		utils.GetLogger().Warn("Auth cache delete failed", zap.String("userId", userID), zap.Error(err))
	}
}

package userRepo

import (
	"context"
	"errors"

	"tourbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID. A missing user yields (nil, nil).
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email. A missing user yields (nil, nil).
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs retrieves the public fields of every listed user.
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// GetAll retrieves the public fields of all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateFields sets and unsets fields on one user.
	UpdateFields(ctx context.Context, id string, set bson.M, unset ...string) error
}

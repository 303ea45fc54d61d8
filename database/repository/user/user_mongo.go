package userRepo

import (
	"context"
	"time"

	"tourbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "users"

// publicProjection strips credential fields from list queries.
var publicProjection = bson.M{"passwordHash": 0, "tokenHash": 0, "otp": 0, "otpExpiry": 0}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a UserRepository backed by the users collection of db.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("user indexes not created", zap.Error(err))
	}
	return repo
}

// newContext bounds a repository call.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

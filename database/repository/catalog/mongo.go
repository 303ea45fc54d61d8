package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"tourbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	packagesCollection = "packages"
	groupsCollection   = "package_groups"
)

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	coll *mongo.Collection
}

func NewMongoPackageRepo(db *mongo.Database) PackageRepository {
	repo := &MongoPackageRepo{coll: db.Collection(packagesCollection)}
	if err := ensureIndexes(repo.coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "group", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}); err != nil {
		utils.GetLogger().Warn("package indexes not created", zap.Error(err))
	}
	return repo
}

func NewMongoGroupRepo(db *mongo.Database) GroupRepository {
	repo := &MongoGroupRepo{coll: db.Collection(groupsCollection)}
	if err := ensureIndexes(repo.coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "packages", Value: 1}}},
	}); err != nil {
		utils.GetLogger().Warn("package group indexes not created", zap.Error(err))
	}
	return repo
}

func ensureIndexes(coll *mongo.Collection, models []mongo.IndexModel) error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

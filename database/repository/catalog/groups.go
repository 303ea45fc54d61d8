package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoGroupRepo) Create(ctx context.Context, group *models.PackageGroup) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now
	if group.PackageIDs == nil {
		group.PackageIDs = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, group); err != nil {
		return fmt.Errorf("failed to create package group: %w", err)
	}
	return nil
}

func (r *MongoGroupRepo) GetByID(ctx context.Context, id string) (*models.PackageGroup, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var group models.PackageGroup
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package group with id %s: %w", id, err)
	}
	return &group, nil
}

func (r *MongoGroupRepo) GetAll(ctx context.Context) ([]models.PackageGroup, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve package groups: %w", err)
	}
	defer cursor.Close(ctx)

	groups := []models.PackageGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode package groups: %w", err)
	}
	return groups, nil
}

func (r *MongoGroupRepo) Update(ctx context.Context, group *models.PackageGroup) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	group.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":      group.Name,
		"photo":     group.Photo,
		"packages":  group.PackageIDs,
		"updatedAt": group.UpdatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": group.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update package group with id %s: %w", group.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package group with id %s: %w", group.ID, ErrGroupNotFound)
	}
	return nil
}

func (r *MongoGroupRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package group with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("package group with id %s: %w", id, ErrGroupNotFound)
	}
	return nil
}

func (r *MongoGroupRepo) PullPackage(ctx context.Context, packageID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateMany(ctx,
		bson.M{"packages": packageID},
		bson.M{"$pull": bson.M{"packages": packageID}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove package %s from groups: %w", packageID, err)
	}
	return nil
}

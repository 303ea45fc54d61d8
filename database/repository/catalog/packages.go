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

// Create inserts a new package document.
func (r *MongoPackageRepo) Create(ctx context.Context, pkg *models.Package) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// GetByID retrieves a package by its unique ID.
func (r *MongoPackageRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Package, error) {
	if len(ids) == 0 {
		return []models.Package{}, nil
	}
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

// GetAll returns every package, newest first.
func (r *MongoPackageRepo) GetAll(ctx context.Context) ([]models.Package, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPackageRepo) GetByGroup(ctx context.Context, groupID string) ([]models.Package, error) {
	return r.find(ctx, bson.M{"group": groupID})
}

func (r *MongoPackageRepo) find(ctx context.Context, filter bson.M) ([]models.Package, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	pkgs := []models.Package{}
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

// Update persists the editable fields of pkg.
func (r *MongoPackageRepo) Update(ctx context.Context, pkg *models.Package) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	set := bson.M{
		"title":       pkg.Title,
		"description": pkg.Description,
		"price":       pkg.Price,
		"discount":    pkg.Discount,
		"finalPrice":  pkg.FinalPrice,
		"duration":    pkg.Duration,
		"images":      pkg.Images,
		"hot":         pkg.Hot,
		"itinerary":   pkg.Itinerary,
		"tags":        pkg.Tags,
		"updatedAt":   pkg.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if pkg.GroupID == "" {
		update["$unset"] = bson.M{"group": ""}
	} else {
		set["group"] = pkg.GroupID
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": pkg.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update package with id %s: %w", pkg.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package with id %s: %w", pkg.ID, ErrPackageNotFound)
	}
	return nil
}

// Delete removes a package document by its ID.
func (r *MongoPackageRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("package with id %s: %w", id, ErrPackageNotFound)
	}
	return nil
}

// IncrementBookings applies an atomic $inc to bookingsCount.
func (r *MongoPackageRepo) IncrementBookings(ctx context.Context, id string, n int) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"bookingsCount": n},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment bookings for package %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package with id %s: %w", id, ErrPackageNotFound)
	}
	return nil
}

func (r *MongoPackageRepo) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to look up packages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode package ids: %w", err)
	}
	found := make([]string, 0, len(docs))
	for _, d := range docs {
		found = append(found, d.ID)
	}
	return found, nil
}

// SetGroup points every listed package at groupID.
func (r *MongoPackageRepo) SetGroup(ctx context.Context, ids []string, groupID string) error {
	if len(ids) == 0 {
		return nil
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateMany(ctx,
		bson.M{"id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"group": groupID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to assign packages to group %s: %w", groupID, err)
	}
	return nil
}

// ClearGroup detaches every package from groupID.
func (r *MongoPackageRepo) ClearGroup(ctx context.Context, groupID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateMany(ctx,
		bson.M{"group": groupID},
		bson.M{"$unset": bson.M{"group": ""}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to detach packages from group %s: %w", groupID, err)
	}
	return nil
}

package recordsRepo

import (
	"context"
	"errors"
	"time"

	"tourbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// Create inserts a new inquiry.
func (r *mongoInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	inquiry.CreatedAt = time.Now()
	inquiry.UpdatedAt = inquiry.CreatedAt

	_, err := r.coll.InsertOne(ctx, inquiry)
	return err
}

// GetAll returns all inquiries, newest first.
func (r *mongoInquiryRepo) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *mongoInquiryRepo) DeleteByID(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

// Create inserts a new review.
func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt

	_, err := r.coll.InsertOne(ctx, review)
	return err
}

func (r *mongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// GetAll returns all reviews, newest first.
func (r *mongoReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *mongoReviewRepo) DeleteByID(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

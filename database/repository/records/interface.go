package recordsRepo

import (
	"context"
	"errors"

	"tourbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRecordNotFound = errors.New("record not found")

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetAll(ctx context.Context) ([]models.Inquiry, error)
	DeleteByID(ctx context.Context, id string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	// GetByID returns (nil, nil) when the review does not exist.
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo returns an InquiryRepository backed by MongoDB.
func NewMongoInquiryRepo(db *mongo.Database) InquiryRepository {
	return &mongoInquiryRepo{coll: db.Collection("inquiries")}
}

// NewMongoReviewRepo returns a ReviewRepository backed by MongoDB.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{coll: db.Collection("reviews")}
}

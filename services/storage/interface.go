package storage

import (
	"context"
	"io"

	"tourbook/models"
)

// Folders used on the image host.
const (
	FolderPackages = "packages"
	FolderGroups   = "packageGroups"
	FolderReviews  = "reviews"
)

// ImageStore hosts uploaded images.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, folder string) (models.Image, error)
	Delete(ctx context.Context, publicID string) error
}

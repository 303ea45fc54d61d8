package storage

import (
	"context"
	"fmt"
	"io"

	"tourbook/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore is an ImageStore backed by Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a CloudinaryStore from account credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores file in folder and returns its hosted reference.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder string) (models.Image, error) {
	params := uploader.UploadParams{
		Folder:         folder,
		UniqueFilename: api.Bool(true),
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return models.Image{}, fmt.Errorf("cloudinary: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return models.Image{}, fmt.Errorf("cloudinary: upload rejected: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return models.Image{}, fmt.Errorf("cloudinary: no public ID returned")
	}
	return models.Image{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete removes a hosted image by its public ID.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary: failed to delete file: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary: delete rejected: %s", result.Error.Message)
	}
	return nil
}

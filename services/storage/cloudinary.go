package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryDocumentStore implements DocumentStore using Cloudinary.
type CloudinaryDocumentStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryDocumentStore creates a new CloudinaryDocumentStore from credentials.
func NewCloudinaryDocumentStore(cloudName, apiKey, apiSecret string) (*CloudinaryDocumentStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryDocumentStore{cld: cld}, nil
}

// Upload uploads data under the given path and returns the public ID.
func (s *CloudinaryDocumentStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     path,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned")
	}
	return result.PublicID, nil
}

// Delete deletes a document given its public ID.
func (s *CloudinaryDocumentStore) Delete(ctx context.Context, objectID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: objectID})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// GetRetrievalURL constructs a delivery URL for the stored document.
func (s *CloudinaryDocumentStore) GetRetrievalURL(ctx context.Context, objectID string, expires time.Duration) (string, error) {
	a, err := s.cld.Media(objectID)
	if err != nil {
		return "", fmt.Errorf("failed to get asset: %w", err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("failed to get URL string: %w", err)
	}
	return url, nil
}

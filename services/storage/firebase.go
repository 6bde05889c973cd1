package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"medcrew/config"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// FirebaseDocumentStore implements DocumentStore using Firebase Storage.
type FirebaseDocumentStore struct {
	client         *gcs.Client
	bucketName     string
	serviceAccount *config.ServiceAccount
}

// NewFirebaseDocumentStore creates a new FirebaseDocumentStore.
func NewFirebaseDocumentStore(serviceAccountJSONPath, bucketName string) (*FirebaseDocumentStore, error) {
	ctx := context.Background()
	client, err := gcs.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Load service account for signing URLs
	sa, err := config.LoadServiceAccount(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	return &FirebaseDocumentStore{
		client:         client,
		bucketName:     bucketName,
		serviceAccount: sa,
	}, nil
}

// Upload writes data to the bucket under the given object path.
func (s *FirebaseDocumentStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	obj := s.client.Bucket(s.bucketName).Object(path)
	w := obj.NewWriter(ctx)
	if contentType != "" {
		w.ObjectAttrs.ContentType = contentType
	}

	if _, err := w.Write(bytes.NewBuffer(data).Bytes()); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return path, nil
}

// Delete removes an object from the bucket.
func (s *FirebaseDocumentStore) Delete(ctx context.Context, objectID string) error {
	obj := s.client.Bucket(s.bucketName).Object(objectID)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// GetRetrievalURL returns a signed URL for the object. A zero expiry falls
// back to the public media URL.
func (s *FirebaseDocumentStore) GetRetrievalURL(ctx context.Context, objectID string, expires time.Duration) (string, error) {
	if expires == 0 {
		return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
			s.bucketName, url.QueryEscape(objectID)), nil
	}

	signed, err := gcs.SignedURL(s.bucketName, objectID, &gcs.SignedURLOptions{
		GoogleAccessID: s.serviceAccount.ClientEmail,
		PrivateKey:     []byte(strings.ReplaceAll(s.serviceAccount.PrivateKey, `\n`, "\n")),
		Method:         "GET",
		Expires:        time.Now().Add(expires),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return signed, nil
}

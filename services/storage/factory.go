package storage

import (
	"fmt"

	"medcrew/config"

	"github.com/spf13/viper"
)

// NewDocumentStore builds the configured DocumentStore backend.
func NewDocumentStore() (DocumentStore, error) {
	switch config.AppConfig.StorageBackend {
	case "cloudinary":
		return NewCloudinaryDocumentStore(
			viper.GetString("cloudinary.cloudName"),
			viper.GetString("cloudinary.apiKey"),
			viper.GetString("cloudinary.apiSecret"),
		)
	case "firebase", "":
		return NewFirebaseDocumentStore(
			config.FirebaseServiceAccountKeyPath,
			config.AppConfig.StorageBucket,
		)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}

package profileRepo

import (
	"context"
	"errors"
	"time"

	"medcrew/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SavePersonalInfo inserts a new personal info record and returns its ID.
func (r *mongoProfileRepo) SavePersonalInfo(ctx context.Context, info models.PersonalInfo) (string, error) {
	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	info.CreatedAt = time.Now()
	info.UpdatedAt = time.Now()

	if _, err := r.personal.InsertOne(ctx, info); err != nil {
		return "", err
	}
	return info.ID, nil
}

// SaveProfessionalInfo inserts a new professional info record and returns its ID.
func (r *mongoProfileRepo) SaveProfessionalInfo(ctx context.Context, info models.ProfessionalInfo) (string, error) {
	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	info.CreatedAt = time.Now()
	info.UpdatedAt = time.Now()

	if _, err := r.professional.InsertOne(ctx, info); err != nil {
		return "", err
	}
	return info.ID, nil
}

// SaveFinancialInfo inserts a new financial info record and returns its ID.
func (r *mongoProfileRepo) SaveFinancialInfo(ctx context.Context, info models.FinancialInfo) (string, error) {
	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	info.CreatedAt = time.Now()
	info.UpdatedAt = time.Now()

	if _, err := r.financial.InsertOne(ctx, info); err != nil {
		return "", err
	}
	return info.ID, nil
}

// SaveDocumentRecord inserts the aggregate document record and returns its ID.
func (r *mongoProfileRepo) SaveDocumentRecord(ctx context.Context, record models.ProfileDocumentRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	if _, err := r.documents.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetDocumentRecord returns the most recent document record for an account,
// or nil when none exists.
func (r *mongoProfileRepo) GetDocumentRecord(ctx context.Context, accountID string) (*models.ProfileDocumentRecord, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var record models.ProfileDocumentRecord
	err := r.documents.FindOne(ctx, bson.M{"accountId": accountID}, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

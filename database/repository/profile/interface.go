package profileRepo

import (
	"context"

	"medcrew/config"
	"medcrew/database"
	"medcrew/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileRepository persists the independent profile-info records and the
// aggregate document record. Each Save* call creates a new record; forms may
// be submitted any number of times.
type ProfileRepository interface {
	SavePersonalInfo(ctx context.Context, info models.PersonalInfo) (string, error)
	SaveProfessionalInfo(ctx context.Context, info models.ProfessionalInfo) (string, error)
	SaveFinancialInfo(ctx context.Context, info models.FinancialInfo) (string, error)
	SaveDocumentRecord(ctx context.Context, record models.ProfileDocumentRecord) (string, error)
	GetDocumentRecord(ctx context.Context, accountID string) (*models.ProfileDocumentRecord, error)
}

type mongoProfileRepo struct {
	personal     *mongo.Collection
	professional *mongo.Collection
	financial    *mongo.Collection
	documents    *mongo.Collection
}

// NewMongoProfileRepo returns a new ProfileRepository instance using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoProfileRepo{
		personal:     db.Collection("personal_info"),
		professional: db.Collection("professional_info"),
		financial:    db.Collection("financial_info"),
		documents:    db.Collection("profile_documents"),
	}
}

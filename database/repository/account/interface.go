package accountRepo

import (
	"medcrew/config"
	"medcrew/database"
	"medcrew/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(email string) (*models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
	// Delete removes an account record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves an account by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Account, error)
	// GetByEmailWithProjection retrieves an account by email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error)
}

type mongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo returns a new AccountRepository instance using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAccountRepo{
		coll: db.Collection("accounts"),
	}
}

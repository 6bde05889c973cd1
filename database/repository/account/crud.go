package accountRepo

import (
	"context"
	"errors"
	"time"

	"medcrew/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 10 * time.Second

// Create inserts a new account record.
func (r *mongoAccountRepo) Create(account *models.Account) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, account)
	return err
}

// Update replaces an existing account record matched by ID.
func (r *mongoAccountRepo) Update(account *models.Account) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	account.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": account.ID}, account)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("account not found")
	}
	return nil
}

// Delete removes an account record by its ID.
func (r *mongoAccountRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("account not found")
	}
	return nil
}

// GetByID retrieves an account by its unique ID.
func (r *mongoAccountRepo) GetByID(id string) (*models.Account, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves an account by its email address.
func (r *mongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	return r.GetByEmailWithProjection(email, nil)
}

// GetByIDWithProjection retrieves an account by ID with an optional projection.
func (r *mongoAccountRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var account models.Account
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// GetByEmailWithProjection retrieves an account by email with an optional projection.
func (r *mongoAccountRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var account models.Account
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

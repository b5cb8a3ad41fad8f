package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/mazegen/identity"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AccountRepo handles the persistence of accounts.
type AccountRepo struct {
	collection *mongo.Collection
}

// NewAccountRepo creates a new AccountRepo with the given MongoDB client, database name, and collection name.
func NewAccountRepo(client *mongo.Client, dbName, collectionName string) *AccountRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &AccountRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (a *AccountRepo) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates an account in the repository.
func (a *AccountRepo) Save(account *identity.Account) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": account.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     account.Username,
			"passwordHash": account.PasswordHash,
			"updatedAt":    time.Now(),
		},
		"$setOnInsert": bson.M{
			"createdAt": account.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := a.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username %q: %w", account.Username, i.ErrConflict)
		}
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// ByID retrieves an account by its ID.
func (a *AccountRepo) ByID(id uuid.UUID) (*identity.Account, error) {
	return a.findOne(bson.M{"_id": id})
}

// ByUsername retrieves an account by its username.
func (a *AccountRepo) ByUsername(username string) (*identity.Account, error) {
	return a.findOne(bson.M{"username": username})
}

func (a *AccountRepo) findOne(filter bson.M) (*identity.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var account identity.Account
	if err := a.collection.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &account, nil
}

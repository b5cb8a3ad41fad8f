package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocument is the stored form of an owner's settings. The record is the
// versioned binary encoding, so older documents stay readable after upgrades.
type settingsDocument struct {
	OwnerID   uuid.UUID `bson:"_id"`
	Record    []byte    `bson:"record"`
	Version   string    `bson:"version"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// SettingsRepo stores one settings record per owner in MongoDB.
type SettingsRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewSettingsRepo creates a new SettingsRepo with the given MongoDB client, database name, and collection name.
func NewSettingsRepo(client *mongo.Client, dbName, collectionName string) *SettingsRepo {
	return &SettingsRepo{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

// Save replaces the owner's record.
func (r *SettingsRepo) Save(ctx context.Context, ownerID uuid.UUID, s settings.Settings) error {
	record, err := s.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := newSettingsDocument(ownerID, record)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": ownerID}, doc, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByOwner loads and decodes the owner's record.
func (r *SettingsRepo) ByOwner(ctx context.Context, ownerID uuid.UUID) (settings.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc settingsDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return settings.Settings{}, i.ErrNotFound
		}
		return settings.Settings{}, fmt.Errorf("unexpected error: %w", err)
	}

	return doc.settings()
}

func newSettingsDocument(ownerID uuid.UUID, record []byte) settingsDocument {
	return settingsDocument{
		OwnerID:   ownerID,
		Record:    record,
		Version:   fmt.Sprintf("%d.%d", settings.RecordMajorVersion, settings.RecordMinorVersion),
		UpdatedAt: time.Now().UTC(),
	}
}

func (d settingsDocument) settings() (settings.Settings, error) {
	var s settings.Settings
	if err := s.UnmarshalBinary(d.Record); err != nil {
		return settings.Settings{}, fmt.Errorf("decoding settings of %s: %w", d.OwnerID, err)
	}
	return s, nil
}

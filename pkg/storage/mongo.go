package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// mongoDocument is the stored board shape: one document per board keyed by
// the board id.
type mongoDocument struct {
	ID        string    `bson:"_id"`
	Records   []Record  `bson:"records"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend stores each board as one document with native bson records.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoBackend connects to mongo and verifies the connection.
func NewMongoBackend(ctx context.Context, cfg MongoConfig) (*MongoBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := cfg.Database
	if db == "" {
		db = "gridboard"
	}
	coll := cfg.Collection
	if coll == "" {
		coll = "boards"
	}
	return &MongoBackend{
		client: client,
		coll:   client.Database(db).Collection(coll),
	}, nil
}

// Fetch retrieves the records of a board.
func (b *MongoBackend) Fetch(ctx context.Context, boardID string) ([]Record, error) {
	var doc mongoDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": boardID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return doc.Records, nil
}

// Put stores the records of a board, upserting the document.
func (b *MongoBackend) Put(ctx context.Context, boardID string, records []Record) error {
	doc := mongoDocument{ID: boardID, Records: records, UpdatedAt: time.Now().UTC()}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": boardID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	return nil
}

// Delete removes a board document.
func (b *MongoBackend) Delete(ctx context.Context, boardID string) error {
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": boardID}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

// Close disconnects the mongo client.
func (b *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}

// Ensure MongoBackend implements Backend.
var _ Backend = (*MongoBackend)(nil)

package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned when the store is used before a database
// connection was established.
var ErrNotConnected = fmt.Errorf("document store not connected")

// DocumentStore is the generic persistence contract consumed by the business
// services. It uses plain collection names and decode targets so services can
// be tested against mocks.
type DocumentStore interface {
	// Create persists doc and returns the store-assigned identifier.
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	// Find decodes all matching documents into results, which must be a
	// pointer to a slice. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter bson.M, limit int64, results interface{}) error
}

// Store is the MongoDB-backed DocumentStore. A nil database handle is
// tolerated so the service can start degraded and report it via diagnostics.
type Store struct {
	db *mongo.Database
}

// NewStore wraps the shared database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connected reports whether a database handle is present.
func (s *Store) Connected() bool {
	return s.db != nil
}

// Name returns the database name, or "" when not connected.
func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func (s *Store) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrNotConnected
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64, results interface{}) error {
	if s.db == nil {
		return ErrNotConnected
	}
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

// CollectionNames lists up to limit collection names, for diagnostics.
func (s *Store) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

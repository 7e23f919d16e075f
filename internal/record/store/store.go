package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mwalczyk/solo/internal/record"
)

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Insert adds one record to the kind's collection and returns the
// store-assigned identifier in its string form.
func (s *Store) Insert(ctx context.Context, kind record.Kind, doc any) (string, error) {
	res, err := s.db.Collection(kind.Collection()).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting %s: %w", kind, err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("inserting %s: unexpected id type %T", kind, res.InsertedID)
	}

	return id.Hex(), nil
}

// List returns every record of the kind matching the filter, eagerly
// materialized, with the internal _id replaced by a string "id" field.
func (s *Store) List(ctx context.Context, kind record.Kind, filter record.Filter) ([]record.Document, error) {
	query := bson.M{}
	for field, value := range filter {
		query[field] = value
	}

	cur, err := s.db.Collection(kind.Collection()).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}
	defer cur.Close(ctx)

	docs := make([]record.Document, 0)

	for cur.Next(ctx) {
		var doc record.Document
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", kind, err)
		}

		if id, ok := doc["_id"].(bson.ObjectID); ok {
			doc["id"] = id.Hex()
			delete(doc, "_id")
		}

		docs = append(docs, doc)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", kind, err)
	}

	return docs, nil
}

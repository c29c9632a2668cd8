// store/mongo.go
package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

// MongoStore persists risk records as one BSON document each in a single
// collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{
		collection: client.Database(database).Collection(collection),
	}
}

// LoadAll returns every record, newest first, normalized for the current
// schema. Documents that fail to decode are dropped from the result with a
// log line instead of failing the whole load.
func (s *MongoStore) LoadAll(ctx context.Context) ([]models.RiskRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("risk records Find error: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	now := time.Now()
	records := []models.RiskRecord{}
	for cursor.Next(ctx) {
		var record models.RiskRecord
		if err := cursor.Decode(&record); err != nil {
			log.Printf("skipping undecodable risk record: %v", err)
			continue
		}
		Normalize(&record, now)
		records = append(records, record)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MongoStore) Create(ctx context.Context, record *models.RiskRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	// Derived scores are never trusted from the caller.
	record.Reclassify()

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		log.Printf("insert risk record error: %v", err)
		return err
	}
	return nil
}

// UpdateByID replaces every non-id field of the stored document.
func (s *MongoStore) UpdateByID(ctx context.Context, id string, record *models.RiskRecord) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	record.ID = oid
	record.UpdatedAt = time.Now()
	record.Reclassify()

	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": oid}, record)
	if err != nil {
		log.Printf("update risk record error: %v", err)
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Printf("delete risk record error: %v", err)
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Surabhi222005/MentorMe/pkg/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "history_entries"

type mongoRecord struct {
	ID        string          `bson:"_id"`
	UserID    string          `bson:"userId"`
	Kind      model.EntryKind `bson:"kind"`
	CreatedAt time.Time       `bson:"createdAt"`
	Seq       int64           `bson:"seq"`
	Payload   bson.M          `bson:"payload"`
}

// MongoBackend keeps records as documents in the history_entries collection.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoBackend(ctx context.Context, client *mongo.Client, database string) (*MongoBackend, error) {
	coll := client.Database(database).Collection(mongoCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "seq", Value: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create history index: %w", err)
	}
	return &MongoBackend{client: client, coll: coll}, nil
}

func (m *MongoBackend) Append(ctx context.Context, userID string, rec Record) error {
	var payload bson.M
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	doc := mongoRecord{
		ID:        rec.ID,
		UserID:    userID,
		Kind:      rec.Kind,
		CreatedAt: rec.CreatedAt,
		// createdAt is stored with millisecond precision; seq keeps insertion order
		Seq:     rec.CreatedAt.UnixNano(),
		Payload: payload,
	}
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (m *MongoBackend) Load(ctx context.Context, userID string) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := m.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	defer cur.Close(ctx)

	var out []Record
	for cur.Next(ctx) {
		var doc mongoRecord
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		payload, err := json.Marshal(doc.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload %s: %w", doc.ID, err)
		}
		out = append(out, Record{ID: doc.ID, Kind: doc.Kind, CreatedAt: doc.CreatedAt, Payload: payload})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (m *MongoBackend) Clear(ctx context.Context, userID string) error {
	if _, err := m.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// Package mongodb is a StateStore backed by a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

type stateDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store keeps one document per key
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect dials uri and verifies the connection
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConnectFailed, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf(ErrMsgPingFailed, err)
	}
	return NewStore(client, database), nil
}

// NewStore wraps an existing client
func NewStore(client *mongo.Client, database string) *Store {
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(CollectionGameState),
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc stateDocument
	err := s.coll.FindOne(ctx, bson.M{FieldID: key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetFailed, key, err)
	}
	return []byte(doc.Value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	update := bson.M{"$set": bson.M{
		FieldValue:     string(value),
		FieldUpdatedAt: time.Now().UTC(),
	}}
	_, err := s.coll.UpdateOne(ctx, bson.M{FieldID: key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf(ErrMsgPutFailed, key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{FieldID: key}); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

package kv

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	KvDbName  = "raqam"
	KvColName = "kv"
)

// MongoStore keeps the same key-value contract in a Mongo collection,
// one document per key. Used when the server should hold state
// remotely instead of on local disk.
type MongoStore struct {
	mongoClient *mongo.Client
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func NewMongoStore(mongoClient *mongo.Client) *MongoStore {
	return &MongoStore{mongoClient: mongoClient}
}

func (ms *MongoStore) collection() *mongo.Collection {
	return ms.mongoClient.Database(KvDbName).Collection(KvColName)
}

func (ms *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := ms.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %v", key, err)
	}
	return doc.Value, true, nil
}

func (ms *MongoStore) Set(ctx context.Context, key, value string) error {
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"value": value}}
	opts := options.Update().SetUpsert(true)

	if _, err := ms.collection().UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to persist key %q: %v", key, err)
	}
	return nil
}

func (ms *MongoStore) MultiGet(ctx context.Context, keys []string) (map[string]string, error) {
	cursor, err := ms.collection().Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, fmt.Errorf("failed to read keys: %v", err)
	}
	defer cursor.Close(ctx)

	values := make(map[string]string, len(keys))
	for cursor.Next(ctx) {
		var doc kvDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode key document: %v", err)
		}
		values[doc.Key] = doc.Value
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return values, nil
}

func (ms *MongoStore) MultiRemove(ctx context.Context, keys []string) error {
	if _, err := ms.collection().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}}); err != nil {
		return fmt.Errorf("failed to remove keys: %v", err)
	}
	return nil
}

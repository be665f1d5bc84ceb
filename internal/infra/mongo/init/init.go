package infra_mongo_init

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/humanbelnik/distancehug/internal/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	RoomsCollection = "rooms"

	FlowersCollection        = "flowers"
	MessagesCollection       = "messages"
	HugsCollection           = "hugs"
	ValentineCardsCollection = "valentine_cards"
	CountdownsCollection     = "countdowns"
	BucketListsCollection    = "bucketlists"
)

var logCollections = []string{
	FlowersCollection,
	MessagesCollection,
	HugsCollection,
	ValentineCardsCollection,
}

var documentCollections = []string{
	CountdownsCollection,
	BucketListsCollection,
}

const connectTimeout = 10 * time.Second

func EstablishConn(ctx context.Context, cfg config.Mongo) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return client, client.Database(cfg.DBName), nil
}

func MustEstablishConn(cfg config.Mongo) (*mongo.Client, *mongo.Database) {
	client, db, err := EstablishConn(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	return client, db
}

// EnsureIndexes is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(RoomsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", RoomsCollection, err)
	}

	for _, name := range logCollections {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "room_code", Value: 1}, {Key: "sent_at", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", name, err)
		}
	}

	for _, name := range documentCollections {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "room_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", name, err)
		}
	}

	return nil
}

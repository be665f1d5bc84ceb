package infra_mongo_content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// entryDoc keeps the payload fields at the top level next to room_code and
// sent_at. Mongo assigns _id; the entry id lives in "id".
type entryDoc[P any] struct {
	ID       string    `bson:"id"`
	RoomCode string    `bson:"room_code"`
	SentAt   time.Time `bson:"sent_at"`
	Payload  P         `bson:",inline"`
}

// LogDriver stores one document per entry in its own collection.
type LogDriver[P any] struct {
	coll *mongo.Collection
}

func NewLog[P any](coll *mongo.Collection) *LogDriver[P] {
	return &LogDriver[P]{coll: coll}
}

func (d *LogDriver[P]) Append(ctx context.Context, e model.Entry[P]) error {
	_, err := d.coll.InsertOne(ctx, entryDoc[P]{
		ID:       e.ID.String(),
		RoomCode: e.RoomCode,
		SentAt:   e.SentAt,
		Payload:  e.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", d.coll.Name(), err)
	}
	return nil
}

func (d *LogDriver[P]) Recent(ctx context.Context, roomCode string, limit int) ([]model.Entry[P], error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sent_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := d.coll.Find(ctx, bson.D{{Key: "room_code", Value: roomCode}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", d.coll.Name(), err)
	}

	var docs []entryDoc[P]
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", d.coll.Name(), err)
	}

	entries := make([]model.Entry[P], 0, len(docs))
	for _, doc := range docs {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("bad %s id %q: %w", d.coll.Name(), doc.ID, err)
		}
		entries = append(entries, model.Entry[P]{
			ID:       id,
			RoomCode: doc.RoomCode,
			SentAt:   doc.SentAt.UTC(),
			Payload:  doc.Payload,
		})
	}
	return entries, nil
}

type document[P any] struct {
	RoomCode  string    `bson:"room_code"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
	Value     P         `bson:",inline"`
}

// DocumentDriver keeps at most one document per room.
type DocumentDriver[P any] struct {
	coll *mongo.Collection
}

func NewDocument[P any](coll *mongo.Collection) *DocumentDriver[P] {
	return &DocumentDriver[P]{coll: coll}
}

func (d *DocumentDriver[P]) Upsert(ctx context.Context, doc model.Document[P]) error {
	update, err := upsertUpdate(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.coll.Name(), err)
	}

	_, err = d.coll.UpdateOne(ctx,
		bson.D{{Key: "room_code", Value: doc.RoomCode}},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", d.coll.Name(), err)
	}
	return nil
}

func (d *DocumentDriver[P]) Get(ctx context.Context, roomCode string) (model.Document[P], error) {
	var doc document[P]

	err := d.coll.FindOne(ctx, bson.D{{Key: "room_code", Value: roomCode}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Document[P]{}, usecase_content.ErrResourceNotFound
		}
		return model.Document[P]{}, fmt.Errorf("failed to load %s: %w", d.coll.Name(), err)
	}

	return model.Document[P]{
		RoomCode:  doc.RoomCode,
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
		Value:     doc.Value,
	}, nil
}

// upsertUpdate sets the value fields and updated_at on every write and
// created_at only when the document is first inserted.
func upsertUpdate[P any](doc model.Document[P]) (bson.D, error) {
	raw, err := bson.Marshal(doc.Value)
	if err != nil {
		return nil, err
	}

	var set bson.D
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	set = append(set, bson.E{Key: "updated_at", Value: doc.UpdatedAt})

	return bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: doc.CreatedAt}}},
	}, nil
}

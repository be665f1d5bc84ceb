package infra_mongo_room

import (
	"context"
	"errors"
	"time"

	"github.com/humanbelnik/distancehug/internal/model"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Driver struct {
	rooms *mongo.Collection
}

func New(
	rooms *mongo.Collection,
) *Driver {
	return &Driver{rooms: rooms}
}

type roomDoc struct {
	Code         string    `bson:"code"`
	Partner1Name string    `bson:"partner1_name"`
	Partner2Name *string   `bson:"partner2_name"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d *Driver) Exists(ctx context.Context, code string) (bool, error) {
	n, err := d.rooms.CountDocuments(ctx, bson.D{{Key: "code", Value: code}}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create relies on the unique index over code.
func (d *Driver) Create(ctx context.Context, room model.Room) error {
	_, err := d.rooms.InsertOne(ctx, roomDoc{
		Code:         room.Code,
		Partner1Name: room.Partner1Name,
		Partner2Name: room.Partner2Name,
		CreatedAt:    room.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usecase_room.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	var doc roomDoc

	err := d.rooms.FindOne(ctx, bson.D{{Key: "code", Value: code}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return model.Room{
		Code:         doc.Code,
		Partner1Name: doc.Partner1Name,
		Partner2Name: doc.Partner2Name,
		CreatedAt:    doc.CreatedAt.UTC(),
	}, nil
}

func (d *Driver) SetSecondPartner(ctx context.Context, code string, name string) error {
	res, err := d.rooms.UpdateOne(ctx,
		bson.D{{Key: "code", Value: code}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "partner2_name", Value: name}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return usecase_room.ErrResourceNotFound
	}
	return nil
}

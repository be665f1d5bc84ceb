package infra_storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/distancehug/internal/config"
	infra_mongo_content "github.com/humanbelnik/distancehug/internal/infra/mongo/content"
	infra_mongo_init "github.com/humanbelnik/distancehug/internal/infra/mongo/init"
	infra_mongo_room "github.com/humanbelnik/distancehug/internal/infra/mongo/room"
	infra_postgres_content "github.com/humanbelnik/distancehug/internal/infra/postgres/content"
	infra_pg_init "github.com/humanbelnik/distancehug/internal/infra/postgres/init"
	infra_postgres_room "github.com/humanbelnik/distancehug/internal/infra/postgres/room"
	infra_redis_content "github.com/humanbelnik/distancehug/internal/infra/redis/content"
	infra_redis_init "github.com/humanbelnik/distancehug/internal/infra/redis/init"
	infra_redis_room "github.com/humanbelnik/distancehug/internal/infra/redis/room"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Store bundles the repositories of one backend.
type Store struct {
	Driver string

	Rooms       usecase_room.RoomRepository
	Flowers     usecase_content.LogRepository[model.Flower]
	Notes       usecase_content.LogRepository[model.Note]
	Hugs        usecase_content.LogRepository[model.Hug]
	Cards       usecase_content.LogRepository[model.ValentineCard]
	Countdowns  usecase_content.DocumentRepository[model.Countdown]
	BucketLists usecase_content.DocumentRepository[model.BucketList]

	closer func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}

// Open connects to the backend named by cfg.Storage.Driver and prepares its schema.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := infra_pg_init.EstablishConn(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := infra_pg_init.CreateSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return NewPostgres(db), nil

	case config.StorageDriverRedis:
		client, err := infra_redis_init.EstablishConn(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedis(client, cfg.Redis.KeyPrefix), nil

	case config.StorageDriverMongo:
		client, db, err := infra_mongo_init.EstablishConn(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := infra_mongo_init.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return NewMongo(client, db), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func NewPostgres(db *sqlx.DB) *Store {
	return &Store{
		Driver:      config.StorageDriverPostgres,
		Rooms:       infra_postgres_room.New(db),
		Flowers:     infra_postgres_content.NewLog[model.Flower](db, infra_postgres_content.KindFlower),
		Notes:       infra_postgres_content.NewLog[model.Note](db, infra_postgres_content.KindMessage),
		Hugs:        infra_postgres_content.NewLog[model.Hug](db, infra_postgres_content.KindHug),
		Cards:       infra_postgres_content.NewLog[model.ValentineCard](db, infra_postgres_content.KindValentineCard),
		Countdowns:  infra_postgres_content.NewDocument[model.Countdown](db, infra_postgres_content.KindCountdown),
		BucketLists: infra_postgres_content.NewDocument[model.BucketList](db, infra_postgres_content.KindBucketList),
		closer: func(context.Context) error {
			return db.Close()
		},
	}
}

func NewRedis(client *redis.Client, prefix string) *Store {
	return &Store{
		Driver:      config.StorageDriverRedis,
		Rooms:       infra_redis_room.New(client, prefix),
		Flowers:     infra_redis_content.NewLog[model.Flower](client, prefix, infra_mongo_init.FlowersCollection),
		Notes:       infra_redis_content.NewLog[model.Note](client, prefix, infra_mongo_init.MessagesCollection),
		Hugs:        infra_redis_content.NewLog[model.Hug](client, prefix, infra_mongo_init.HugsCollection),
		Cards:       infra_redis_content.NewLog[model.ValentineCard](client, prefix, infra_mongo_init.ValentineCardsCollection),
		Countdowns:  infra_redis_content.NewDocument[model.Countdown](client, prefix, infra_mongo_init.CountdownsCollection),
		BucketLists: infra_redis_content.NewDocument[model.BucketList](client, prefix, infra_mongo_init.BucketListsCollection),
		closer: func(context.Context) error {
			return client.Close()
		},
	}
}

func NewMongo(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Driver:      config.StorageDriverMongo,
		Rooms:       infra_mongo_room.New(db.Collection(infra_mongo_init.RoomsCollection)),
		Flowers:     infra_mongo_content.NewLog[model.Flower](db.Collection(infra_mongo_init.FlowersCollection)),
		Notes:       infra_mongo_content.NewLog[model.Note](db.Collection(infra_mongo_init.MessagesCollection)),
		Hugs:        infra_mongo_content.NewLog[model.Hug](db.Collection(infra_mongo_init.HugsCollection)),
		Cards:       infra_mongo_content.NewLog[model.ValentineCard](db.Collection(infra_mongo_init.ValentineCardsCollection)),
		Countdowns:  infra_mongo_content.NewDocument[model.Countdown](db.Collection(infra_mongo_init.CountdownsCollection)),
		BucketLists: infra_mongo_content.NewDocument[model.BucketList](db.Collection(infra_mongo_init.BucketListsCollection)),
		closer: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

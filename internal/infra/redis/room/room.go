package infra_redis_room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
)

const (
	fieldPartner1  = "partner1_name"
	fieldPartner2  = "partner2_name"
	fieldCreatedAt = "created_at"
)

// Driver keeps every room in its own hash under <prefix>:room:<code>.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Exists(ctx context.Context, code string) (bool, error) {
	n, err := d.client.WithContext(ctx).Exists(d.getFullKey(code)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create writes the whole hash in one MULTI/EXEC guarded by WATCH, so a
// code is either free or holds a complete room.
func (d *Driver) Create(ctx context.Context, room model.Room) error {
	key := d.getFullKey(room.Code)

	fields := map[string]interface{}{
		fieldCreatedAt: room.CreatedAt.UTC().Format(time.RFC3339Nano),
		fieldPartner1:  room.Partner1Name,
	}
	if room.Partner2Name != nil {
		fields[fieldPartner2] = *room.Partner2Name
	}

	err := d.client.WithContext(ctx).Watch(func(tx *redis.Tx) error {
		n, err := tx.Exists(key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return usecase_room.ErrCodeConflict
		}

		_, err = tx.Pipelined(func(pipe redis.Pipeliner) error {
			pipe.HMSet(key, fields)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return usecase_room.ErrCodeConflict
	}
	return err
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	fields, err := d.client.WithContext(ctx).HGetAll(d.getFullKey(code)).Result()
	if err != nil {
		return model.Room{}, err
	}
	if len(fields) == 0 {
		return model.Room{}, usecase_room.ErrResourceNotFound
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return model.Room{}, fmt.Errorf("room %s has bad created_at: %w", code, err)
	}

	room := model.Room{
		Code:         code,
		Partner1Name: fields[fieldPartner1],
		CreatedAt:    createdAt,
	}
	if name, ok := fields[fieldPartner2]; ok {
		room.Partner2Name = &name
	}

	return room, nil
}

func (d *Driver) SetSecondPartner(ctx context.Context, code string, name string) error {
	c := d.client.WithContext(ctx)
	key := d.getFullKey(code)

	n, err := c.Exists(key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return c.HSet(key, fieldPartner2, name).Err()
}

func (d *Driver) getFullKey(code string) string {
	if d.key != "" {
		return d.key + ":room:" + code
	}
	return "room:" + code
}

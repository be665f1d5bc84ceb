package infra_redis_content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type entryRecord[P any] struct {
	ID      uuid.UUID `json:"id"`
	SentAt  time.Time `json:"sent_at"`
	Payload P         `json:"payload"`
}

// LogDriver keeps a room log as a list under <prefix>:<namespace>:<code>,
// newest entry at the head.
type LogDriver[P any] struct {
	client    *redis.Client
	prefix    string
	namespace string
}

func NewLog[P any](client *redis.Client, prefix, namespace string) *LogDriver[P] {
	return &LogDriver[P]{client: client, prefix: prefix, namespace: namespace}
}

func (d *LogDriver[P]) Append(ctx context.Context, e model.Entry[P]) error {
	raw, err := json.Marshal(entryRecord[P]{ID: e.ID, SentAt: e.SentAt, Payload: e.Payload})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.namespace, err)
	}

	key := fullKey(d.prefix, d.namespace, e.RoomCode)
	if err := d.client.WithContext(ctx).LPush(key, raw).Err(); err != nil {
		return fmt.Errorf("failed to store %s: %w", d.namespace, err)
	}
	return nil
}

func (d *LogDriver[P]) Recent(ctx context.Context, roomCode string, limit int) ([]model.Entry[P], error) {
	key := fullKey(d.prefix, d.namespace, roomCode)

	raws, err := d.client.WithContext(ctx).LRange(key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", d.namespace, err)
	}

	entries := make([]model.Entry[P], 0, len(raws))
	for _, raw := range raws {
		var rec entryRecord[P]
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", d.namespace, err)
		}
		entries = append(entries, model.Entry[P]{
			ID:       rec.ID,
			RoomCode: roomCode,
			SentAt:   rec.SentAt.UTC(),
			Payload:  rec.Payload,
		})
	}

	return entries, nil
}

const (
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
	fieldValue     = "value"
)

// DocumentDriver keeps a per-room document as a hash under <prefix>:<namespace>:<code>.
type DocumentDriver[P any] struct {
	client    *redis.Client
	prefix    string
	namespace string
}

func NewDocument[P any](client *redis.Client, prefix, namespace string) *DocumentDriver[P] {
	return &DocumentDriver[P]{client: client, prefix: prefix, namespace: namespace}
}

func (d *DocumentDriver[P]) Upsert(ctx context.Context, doc model.Document[P]) error {
	raw, err := json.Marshal(doc.Value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.namespace, err)
	}

	key := fullKey(d.prefix, d.namespace, doc.RoomCode)
	_, err = d.client.WithContext(ctx).TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.HSetNX(key, fieldCreatedAt, doc.CreatedAt.UTC().Format(time.RFC3339Nano))
		pipe.HSet(key, fieldUpdatedAt, doc.UpdatedAt.UTC().Format(time.RFC3339Nano))
		pipe.HSet(key, fieldValue, raw)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", d.namespace, err)
	}
	return nil
}

func (d *DocumentDriver[P]) Get(ctx context.Context, roomCode string) (model.Document[P], error) {
	fields, err := d.client.WithContext(ctx).HGetAll(fullKey(d.prefix, d.namespace, roomCode)).Result()
	if err != nil {
		return model.Document[P]{}, fmt.Errorf("failed to load %s: %w", d.namespace, err)
	}
	if len(fields) == 0 {
		return model.Document[P]{}, usecase_content.ErrResourceNotFound
	}

	var value P
	if err := json.Unmarshal([]byte(fields[fieldValue]), &value); err != nil {
		return model.Document[P]{}, fmt.Errorf("failed to decode %s: %w", d.namespace, err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return model.Document[P]{}, fmt.Errorf("%s %s has bad created_at: %w", d.namespace, roomCode, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt])
	if err != nil {
		return model.Document[P]{}, fmt.Errorf("%s %s has bad updated_at: %w", d.namespace, roomCode, err)
	}

	return model.Document[P]{
		RoomCode:  roomCode,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Value:     value,
	}, nil
}

func fullKey(prefix, namespace, roomCode string) string {
	if prefix != "" {
		return prefix + ":" + namespace + ":" + roomCode
	}
	return namespace + ":" + roomCode
}

package infra_postgres_content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

// Kinds stored in room_entries and room_documents.
const (
	KindFlower        = "flower"
	KindMessage       = "message"
	KindHug           = "hug"
	KindValentineCard = "valentine_card"
	KindCountdown     = "countdown"
	KindBucketList    = "bucket_list"
)

type entryDTO struct {
	ID       uuid.UUID      `db:"id"`
	Kind     string         `db:"kind"`
	RoomCode string         `db:"room_code"`
	SentAt   time.Time      `db:"sent_at"`
	Payload  types.JSONText `db:"payload"`
}

type documentDTO struct {
	Kind      string         `db:"kind"`
	RoomCode  string         `db:"room_code"`
	Payload   types.JSONText `db:"payload"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// LogDriver keeps one kind of room log in the shared room_entries table.
type LogDriver[P any] struct {
	db   *sqlx.DB
	kind string
}

func NewLog[P any](db *sqlx.DB, kind string) *LogDriver[P] {
	return &LogDriver[P]{db: db, kind: kind}
}

func (d *LogDriver[P]) Append(ctx context.Context, e model.Entry[P]) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.kind, err)
	}

	query := `
		INSERT INTO room_entries (id, kind, room_code, sent_at, payload)
		VALUES (:id, :kind, :room_code, :sent_at, :payload)
	`

	_, err = d.db.NamedExecContext(ctx, query, entryDTO{
		ID:       e.ID,
		Kind:     d.kind,
		RoomCode: e.RoomCode,
		SentAt:   e.SentAt,
		Payload:  types.JSONText(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", d.kind, err)
	}
	return nil
}

func (d *LogDriver[P]) Recent(ctx context.Context, roomCode string, limit int) ([]model.Entry[P], error) {
	var rows []entryDTO

	query := `
		SELECT id, kind, room_code, sent_at, payload
		FROM room_entries
		WHERE kind = $1 AND room_code = $2
		ORDER BY sent_at DESC
		LIMIT $3
	`

	if err := d.db.SelectContext(ctx, &rows, query, d.kind, roomCode, limit); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", d.kind, err)
	}

	entries := make([]model.Entry[P], 0, len(rows))
	for _, row := range rows {
		var payload P
		if err := row.Payload.Unmarshal(&payload); err != nil {
			return nil, fmt.Errorf("failed to decode %s %s: %w", d.kind, row.ID, err)
		}
		entries = append(entries, model.Entry[P]{
			ID:       row.ID,
			RoomCode: row.RoomCode,
			SentAt:   row.SentAt.UTC(),
			Payload:  payload,
		})
	}

	return entries, nil
}

// DocumentDriver keeps one kind of per-room document in room_documents.
type DocumentDriver[P any] struct {
	db   *sqlx.DB
	kind string
}

func NewDocument[P any](db *sqlx.DB, kind string) *DocumentDriver[P] {
	return &DocumentDriver[P]{db: db, kind: kind}
}

func (d *DocumentDriver[P]) Upsert(ctx context.Context, doc model.Document[P]) error {
	payload, err := json.Marshal(doc.Value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.kind, err)
	}

	query := `
		INSERT INTO room_documents (kind, room_code, payload, created_at, updated_at)
		VALUES (:kind, :room_code, :payload, :created_at, :updated_at)
		ON CONFLICT (kind, room_code) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`

	_, err = d.db.NamedExecContext(ctx, query, documentDTO{
		Kind:      d.kind,
		RoomCode:  doc.RoomCode,
		Payload:   types.JSONText(payload),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", d.kind, err)
	}
	return nil
}

func (d *DocumentDriver[P]) Get(ctx context.Context, roomCode string) (model.Document[P], error) {
	var row documentDTO

	query := `
		SELECT kind, room_code, payload, created_at, updated_at
		FROM room_documents
		WHERE kind = $1 AND room_code = $2
	`

	err := d.db.GetContext(ctx, &row, query, d.kind, roomCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document[P]{}, usecase_content.ErrResourceNotFound
		}
		return model.Document[P]{}, fmt.Errorf("failed to load %s: %w", d.kind, err)
	}

	var value P
	if err := row.Payload.Unmarshal(&value); err != nil {
		return model.Document[P]{}, fmt.Errorf("failed to decode %s: %w", d.kind, err)
	}

	return model.Document[P]{
		RoomCode:  row.RoomCode,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
		Value:     value,
	}, nil
}

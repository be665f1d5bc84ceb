package infra_pg_init

import (
	"context"
	"fmt"
	"log"

	"github.com/humanbelnik/distancehug/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}

func EstablishConn(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	db, err := EstablishConn(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	return db
}

// CreateSchema is safe to call on every start.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
    code TEXT PRIMARY KEY,
    partner1_name TEXT NOT NULL,
    partner2_name TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Append-only logs: flowers, messages, hugs, valentine cards
CREATE TABLE IF NOT EXISTS room_entries (
    id UUID PRIMARY KEY,
    kind TEXT NOT NULL,
    room_code TEXT NOT NULL,
    sent_at TIMESTAMPTZ NOT NULL,
    payload JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_room_entries_recent ON room_entries(kind, room_code, sent_at DESC);

-- One document per room: countdown, bucket list
CREATE TABLE IF NOT EXISTS room_documents (
    kind TEXT NOT NULL,
    room_code TEXT NOT NULL,
    payload JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (kind, room_code)
);
`

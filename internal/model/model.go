package model

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an immutable record of an append-only room log.
type Entry[P any] struct {
	ID       uuid.UUID
	RoomCode string
	SentAt   time.Time
	Payload  P
}

// Document is the single current value kept per room.
type Document[P any] struct {
	RoomCode  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Value     P
}

package usecase_content

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/distancehug/internal/model"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=LogRepository --output=./mocks/content/repository --filename=log.go
type LogRepository[P any] interface {
	Append(ctx context.Context, e model.Entry[P]) error
	// Recent returns up to limit entries of the room, newest first.
	Recent(ctx context.Context, roomCode string, limit int) ([]model.Entry[P], error)
}

//go:generate mockery --name=DocumentRepository --output=./mocks/content/repository --filename=document.go
type DocumentRepository[P any] interface {
	// Upsert replaces Value and UpdatedAt, CreatedAt is kept when the document exists.
	Upsert(ctx context.Context, d model.Document[P]) error
	// Get fails with ErrResourceNotFound when nothing was written yet.
	Get(ctx context.Context, roomCode string) (model.Document[P], error)
}

// Log is an append-only room log read newest first, at most size entries at a time.
type Log[P any] struct {
	repository LogRepository[P]
	size       int
	now        func() time.Time
}

func NewLog[P any](repository LogRepository[P], size int) *Log[P] {
	if size <= 0 {
		size = 100 /* default */
	}
	return &Log[P]{
		repository: repository,
		size:       size,
		now:        time.Now,
	}
}

func (u *Log[P]) Size() int {
	return u.size
}

// Append stores payload for roomCode. The room is not checked for existence.
func (u *Log[P]) Append(ctx context.Context, roomCode string, payload P) (model.Entry[P], error) {
	e := model.Entry[P]{
		ID:       uuid.New(),
		RoomCode: roomCode,
		SentAt:   u.now().UTC(),
		Payload:  payload,
	}

	if err := u.repository.Append(ctx, e); err != nil {
		return model.Entry[P]{}, errors.Join(ErrInternal, err)
	}

	return e, nil
}

// Recent never fails on an empty room, limit <= 0 means the log cap.
func (u *Log[P]) Recent(ctx context.Context, roomCode string, limit int) ([]model.Entry[P], error) {
	if limit <= 0 || limit > u.size {
		limit = u.size
	}

	entries, err := u.repository.Recent(ctx, roomCode, limit)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	if entries == nil {
		return []model.Entry[P]{}, nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SentAt.After(entries[j].SentAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// Singleton keeps one replace-on-write document per room.
type Singleton[P any] struct {
	repository DocumentRepository[P]
	now        func() time.Time
}

func NewSingleton[P any](repository DocumentRepository[P]) *Singleton[P] {
	return &Singleton[P]{
		repository: repository,
		now:        time.Now,
	}
}

func (u *Singleton[P]) Replace(ctx context.Context, roomCode string, value P) error {
	now := u.now().UTC()
	d := model.Document[P]{
		RoomCode:  roomCode,
		CreatedAt: now,
		UpdatedAt: now,
		Value:     value,
	}

	if err := u.repository.Upsert(ctx, d); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Current reports false when the room has no document yet.
func (u *Singleton[P]) Current(ctx context.Context, roomCode string) (model.Document[P], bool, error) {
	d, err := u.repository.Get(ctx, roomCode)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Document[P]{}, false, nil
		}
		return model.Document[P]{}, false, errors.Join(ErrInternal, err)
	}

	return d, true, nil
}

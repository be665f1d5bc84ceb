package usecase_room

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/humanbelnik/distancehug/internal/model"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available room codes")
	ErrRoomFull         = errors.New("room is full")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=RoomRepository --output=./mocks/room/repository --filename=repository.go
type RoomRepository interface {
	Exists(ctx context.Context, code string) (bool, error)
	// Create fails with ErrCodeConflict when the code is already taken.
	Create(ctx context.Context, room model.Room) error
	ByCode(ctx context.Context, code string) (model.Room, error)
	SetSecondPartner(ctx context.Context, code string, name string) error
}

type Usecase struct {
	RoomRepository RoomRepository

	maxAttempts int
	codeGen     func() string
	now         func() time.Time
}

type Option func(*Usecase)

// WithCodeGenerator replaces the random code source.
func WithCodeGenerator(gen func() string) Option {
	return func(u *Usecase) {
		u.codeGen = gen
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	RoomRepository RoomRepository,
	maxAttempts int,
	opts ...Option,
) *Usecase {
	if maxAttempts <= 0 {
		maxAttempts = 10 /* default */
	}

	u := &Usecase{
		RoomRepository: RoomRepository,
		maxAttempts:    maxAttempts,
		codeGen:        buildRoomCode,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create allocates a fresh code and records partnerName as the first partner.
// Codes can conflict, so a bounded number of codes is tried.
func (u *Usecase) Create(ctx context.Context, partnerName string) (model.Room, error) {
	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		code := u.codeGen()

		exists, err := u.RoomRepository.Exists(ctx, code)
		if err != nil {
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		if exists {
			continue
		}

		room := model.Room{
			Code:         code,
			Partner1Name: partnerName,
			CreatedAt:    u.now().UTC(),
		}
		if err := u.RoomRepository.Create(ctx, room); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				continue
			}
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		return room, nil
	}

	return model.Room{}, ErrRoomsUnavailable
}

// Join takes the second partner slot. Two racing joiners both succeed and
// the later write wins.
func (u *Usecase) Join(ctx context.Context, code string, partnerName string) (model.Room, error) {
	code = NormalizeCode(code)

	room, err := u.Get(ctx, code)
	if err != nil {
		return model.Room{}, err
	}

	if room.IsFull() {
		return model.Room{}, ErrRoomFull
	}

	if err := u.RoomRepository.SetSecondPartner(ctx, code, partnerName); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	room.Partner2Name = &partnerName
	return room, nil
}

func (u *Usecase) Get(ctx context.Context, code string) (model.Room, error) {
	code = NormalizeCode(code)
	if !model.IsValidRoomCode(code) {
		return model.Room{}, ErrResourceNotFound
	}

	room, err := u.RoomRepository.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}

	return room, nil
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func buildRoomCode() string {
	var builder strings.Builder
	builder.Grow(model.RoomCodeLen)

	for i := 0; i < model.RoomCodeLen; i++ {
		builder.WriteByte(model.RoomCodeAlphabet[rand.Intn(len(model.RoomCodeAlphabet))])
	}

	return builder.String()
}

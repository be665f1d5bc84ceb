package usecase_room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/humanbelnik/distancehug/internal/model"
	repo_mocks "github.com/humanbelnik/distancehug/internal/usecase/room/mocks/room/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	roomRepo *repo_mocks.RoomRepository
	ctx      context.Context
}

var fixedNow = time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)

// codes hands out the given codes in order, repeating the last one.
func codes(list ...string) func() string {
	i := 0
	return func() string {
		c := list[i]
		if i < len(list)-1 {
			i++
		}
		return c
	}
}

func initResources(t provider.T, attempts int, gen func() string) *resources {
	roomRepo := repo_mocks.NewRoomRepository(t)
	opts := []Option{WithClock(func() time.Time { return fixedNow })}
	if gen != nil {
		opts = append(opts, WithCodeGenerator(gen))
	}

	return &resources{
		roomRepo: roomRepo,
		usecase:  New(roomRepo, attempts, opts...),
		ctx:      context.Background(),
	}
}

func validRoomCode() string {
	return "ABC123"
}

func partner(name string) *string {
	return &name
}

func (suite *UsecaseRoomUnitSuite) TestBuildRoomCode(t provider.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		code := buildRoomCode()
		assert.True(t, model.IsValidRoomCode(code), "code %q", code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 490)
}

func (suite *UsecaseRoomUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		attempts      int
		gen           func() string
		setupMocks    func(r *resources)
		expectedCode  string
		expectedError error
	}{
		{
			name:     "Should create room on first free code",
			attempts: 3,
			gen:      codes("ABC123"),
			setupMocks: func(r *resources) {
				r.roomRepo.On("Exists", r.ctx, "ABC123").Return(false, nil).Once()
				r.roomRepo.On("Create", r.ctx, model.Room{
					Code:         "ABC123",
					Partner1Name: "Alex",
					CreatedAt:    fixedNow,
				}).Return(nil).Once()
			},
			expectedCode: "ABC123",
		},
		{
			name:     "Should skip codes that already exist",
			attempts: 3,
			gen:      codes("AAAAAA", "BBBBBB"),
			setupMocks: func(r *resources) {
				r.roomRepo.On("Exists", r.ctx, "AAAAAA").Return(true, nil).Once()
				r.roomRepo.On("Exists", r.ctx, "BBBBBB").Return(false, nil).Once()
				r.roomRepo.On("Create", r.ctx, mock.MatchedBy(func(room model.Room) bool {
					return room.Code == "BBBBBB"
				})).Return(nil).Once()
			},
			expectedCode: "BBBBBB",
		},
		{
			name:     "Should retry when insert loses the race",
			attempts: 3,
			gen:      codes("AAAAAA", "BBBBBB"),
			setupMocks: func(r *resources) {
				r.roomRepo.On("Exists", r.ctx, mock.AnythingOfType("string")).Return(false, nil).Twice()
				r.roomRepo.On("Create", r.ctx, mock.MatchedBy(func(room model.Room) bool {
					return room.Code == "AAAAAA"
				})).Return(ErrCodeConflict).Once()
				r.roomRepo.On("Create", r.ctx, mock.MatchedBy(func(room model.Room) bool {
					return room.Code == "BBBBBB"
				})).Return(nil).Once()
			},
			expectedCode: "BBBBBB",
		},
		{
			name:     "Should give up after the attempt budget",
			attempts: 3,
			gen:      codes("AAAAAA"),
			setupMocks: func(r *resources) {
				r.roomRepo.On("Exists", r.ctx, "AAAAAA").Return(true, nil).Times(3)
			},
			expectedError: ErrRoomsUnavailable,
		},
		{
			name:     "Should wrap repository failure as internal",
			attempts: 3,
			gen:      codes("AAAAAA"),
			setupMocks: func(r *resources) {
				r.roomRepo.On("Exists", r.ctx, "AAAAAA").Return(false, errors.New("connection reset")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t, tc.attempts, tc.gen)
			tc.setupMocks(r)

			room, err := r.usecase.Create(r.ctx, "Alex")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, room.Code)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedCode, room.Code)
				assert.Equal(t, "Alex", room.Partner1Name)
				assert.Nil(t, room.Partner2Name)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		code          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should take the empty slot",
			code: validRoomCode(),
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).
					Return(model.Room{Code: validRoomCode(), Partner1Name: "Alex"}, nil).Once()
				r.roomRepo.On("SetSecondPartner", r.ctx, validRoomCode(), "Sam").Return(nil).Once()
			},
		},
		{
			name: "Should normalize lowercase code",
			code: " abc123 ",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).
					Return(model.Room{Code: validRoomCode(), Partner1Name: "Alex"}, nil).Once()
				r.roomRepo.On("SetSecondPartner", r.ctx, validRoomCode(), "Sam").Return(nil).Once()
			},
		},
		{
			name: "Should return not found for unknown code",
			code: validRoomCode(),
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).Return(model.Room{}, ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name:          "Should return not found for malformed code without touching the store",
			code:          "nope",
			setupMocks:    func(r *resources) {},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "Should refuse a third partner",
			code: validRoomCode(),
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).
					Return(model.Room{Code: validRoomCode(), Partner1Name: "Alex", Partner2Name: partner("Kim")}, nil).Once()
			},
			expectedError: ErrRoomFull,
		},
		{
			name: "Should report room removed between read and write",
			code: validRoomCode(),
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).
					Return(model.Room{Code: validRoomCode(), Partner1Name: "Alex"}, nil).Once()
				r.roomRepo.On("SetSecondPartner", r.ctx, validRoomCode(), "Sam").Return(ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "Should wrap write failure as internal",
			code: validRoomCode(),
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).
					Return(model.Room{Code: validRoomCode(), Partner1Name: "Alex"}, nil).Once()
				r.roomRepo.On("SetSecondPartner", r.ctx, validRoomCode(), "Sam").Return(errors.New("timeout")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t, 3, nil)
			tc.setupMocks(r)

			room, err := r.usecase.Join(r.ctx, tc.code, "Sam")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Alex", room.Partner1Name)
				if assert.NotNil(t, room.Partner2Name) {
					assert.Equal(t, "Sam", *room.Partner2Name)
				}
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestGet(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should return stored room",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).
					Return(model.Room{Code: validRoomCode(), Partner1Name: "Alex", CreatedAt: fixedNow}, nil).Once()
			},
		},
		{
			name: "Should return not found",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).Return(model.Room{}, ErrResourceNotFound).Once()
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "Should wrap repository failure as internal",
			setupMocks: func(r *resources) {
				r.roomRepo.On("ByCode", r.ctx, validRoomCode()).Return(model.Room{}, errors.New("boom")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t, 3, nil)
			tc.setupMocks(r)

			room, err := r.usecase.Get(r.ctx, validRoomCode())

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, validRoomCode(), room.Code)
				assert.Equal(t, fixedNow, room.CreatedAt)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func TestUsecaseRoomUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}

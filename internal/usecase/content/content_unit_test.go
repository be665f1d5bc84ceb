package usecase_content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/distancehug/internal/model"
	repo_mocks "github.com/humanbelnik/distancehug/internal/usecase/content/mocks/content/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseContentUnitSuite struct {
	suite.Suite
}

var fixedNow = time.Date(2026, time.February, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func validRoomCode() string {
	return "LOVE42"
}

func rose(sender string) model.Flower {
	return model.Flower{Sender: sender, FlowerType: "rose"}
}

func flowerEntries(n int) []model.Entry[model.Flower] {
	entries := make([]model.Entry[model.Flower], n)
	for i := 0; i < n; i++ {
		entries[i] = model.Entry[model.Flower]{
			ID:       uuid.New(),
			RoomCode: validRoomCode(),
			// oldest first on purpose
			SentAt:  fixedNow.Add(time.Duration(i) * time.Minute),
			Payload: rose("Alex"),
		}
	}
	return entries
}

func (s *UsecaseContentUnitSuite) TestAppend(t provider.T) {
	t.Parallel()

	t.Run("Should stamp id and time and store the entry", func(t provider.T) {
		repo := repo_mocks.NewLogRepository[model.Flower](t)
		u := NewLog[model.Flower](repo, 100)
		u.now = clock
		ctx := context.Background()

		repo.On("Append", ctx, mock.MatchedBy(func(e model.Entry[model.Flower]) bool {
			return e.ID != uuid.Nil &&
				e.RoomCode == validRoomCode() &&
				e.SentAt.Equal(fixedNow) &&
				e.Payload.FlowerType == "rose"
		})).Return(nil).Once()

		e, err := u.Append(ctx, validRoomCode(), rose("Alex"))

		assert.NoError(t, err)
		assert.Equal(t, "Alex", e.Payload.Sender)
		assert.Equal(t, fixedNow, e.SentAt)
	})

	t.Run("Should wrap repository failure as internal", func(t provider.T) {
		repo := repo_mocks.NewLogRepository[model.Flower](t)
		u := NewLog[model.Flower](repo, 100)
		ctx := context.Background()

		repo.On("Append", ctx, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := u.Append(ctx, validRoomCode(), rose("Alex"))

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseContentUnitSuite) TestRecent(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		size          int
		limit         int
		expectedLimit int
		stored        []model.Entry[model.Flower]
		repoErr       error
		expectedLen   int
		expectedError error
	}{
		{
			name:          "Should return empty slice for unknown room",
			size:          100,
			limit:         0,
			expectedLimit: 100,
			stored:        nil,
			expectedLen:   0,
		},
		{
			name:          "Should clamp limit to log size",
			size:          50,
			limit:         500,
			expectedLimit: 50,
			stored:        flowerEntries(3),
			expectedLen:   3,
		},
		{
			name:          "Should honour smaller limit and trim overlong results",
			size:          50,
			limit:         2,
			expectedLimit: 2,
			stored:        flowerEntries(4),
			expectedLen:   2,
		},
		{
			name:          "Should wrap repository failure as internal",
			size:          50,
			limit:         10,
			expectedLimit: 10,
			repoErr:       errors.New("closed"),
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			repo := repo_mocks.NewLogRepository[model.Flower](t)
			u := NewLog[model.Flower](repo, tc.size)
			ctx := context.Background()

			repo.On("Recent", ctx, validRoomCode(), tc.expectedLimit).Return(tc.stored, tc.repoErr).Once()

			entries, err := u.Recent(ctx, validRoomCode(), tc.limit)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Len(t, entries, tc.expectedLen)
			for i := 1; i < len(entries); i++ {
				assert.False(t, entries[i].SentAt.After(entries[i-1].SentAt), "entries must be newest first")
			}
		})
	}
}

func (s *UsecaseContentUnitSuite) TestReplace(t provider.T) {
	t.Parallel()

	t.Run("Should upsert the full value", func(t provider.T) {
		repo := repo_mocks.NewDocumentRepository[model.BucketList](t)
		u := NewSingleton[model.BucketList](repo)
		u.now = clock
		ctx := context.Background()
		value := model.BucketList{Items: []model.BucketListItem{{Text: "Paris", Completed: true}}}

		repo.On("Upsert", ctx, model.Document[model.BucketList]{
			RoomCode:  validRoomCode(),
			CreatedAt: fixedNow,
			UpdatedAt: fixedNow,
			Value:     value,
		}).Return(nil).Once()

		assert.NoError(t, u.Replace(ctx, validRoomCode(), value))
	})

	t.Run("Should wrap repository failure as internal", func(t provider.T) {
		repo := repo_mocks.NewDocumentRepository[model.Countdown](t)
		u := NewSingleton[model.Countdown](repo)
		ctx := context.Background()

		repo.On("Upsert", ctx, mock.Anything).Return(errors.New("read-only replica")).Once()

		err := u.Replace(ctx, validRoomCode(), model.Countdown{EventName: "visit", TargetDate: "2026-03-01"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseContentUnitSuite) TestCurrent(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		doc           model.Document[model.Countdown]
		repoErr       error
		expectedFound bool
		expectedError error
	}{
		{
			name: "Should return stored document",
			doc: model.Document[model.Countdown]{
				RoomCode: validRoomCode(),
				Value:    model.Countdown{EventName: "visit", TargetDate: "2026-03-01"},
			},
			expectedFound: true,
		},
		{
			name:          "Should report absence without error",
			repoErr:       ErrResourceNotFound,
			expectedFound: false,
		},
		{
			name:          "Should wrap repository failure as internal",
			repoErr:       errors.New("network"),
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			repo := repo_mocks.NewDocumentRepository[model.Countdown](t)
			u := NewSingleton[model.Countdown](repo)
			ctx := context.Background()

			repo.On("Get", ctx, validRoomCode()).Return(tc.doc, tc.repoErr).Once()

			doc, found, err := u.Current(ctx, validRoomCode())

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedFound, found)
			if found {
				assert.Equal(t, "visit", doc.Value.EventName)
			}
		})
	}
}

func TestUsecaseContentUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseContentUnitSuite))
}

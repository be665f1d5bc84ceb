package infra_postgres_room

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type RoomInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "postgres")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func validRoomCode() string {
	return "ABC123"
}

var createdAt = time.Date(2026, time.February, 14, 8, 0, 0, 0, time.UTC)

func (suite *RoomInfraUnitSuite) TestExists(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expected    bool
		expectError bool
	}{
		{
			name: "Should report existing code",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT EXISTS").
					WithArgs(validRoomCode()).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expected: true,
		},
		{
			name: "Should report free code",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT EXISTS").
					WithArgs(validRoomCode()).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expected: false,
		},
		{
			name: "Should return error when query fails",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT EXISTS").
					WithArgs(validRoomCode()).
					WillReturnError(errors.New("conn refused"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			exists, err := r.driver.Exists(r.ctx, validRoomCode())

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, exists)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *RoomInfraUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	room := model.Room{Code: validRoomCode(), Partner1Name: "Alex", CreatedAt: createdAt}

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should insert room",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO rooms").
					WithArgs(validRoomCode(), "Alex", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Should map unique violation to code conflict",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO rooms").
					WithArgs(validRoomCode(), "Alex", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(&pq.Error{Code: uniqueViolation, Message: "duplicate key value violates unique constraint"})
			},
			expectError:   true,
			expectedError: usecase_room.ErrCodeConflict,
		},
		{
			name: "Should pass through other failures",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("INSERT INTO rooms").
					WithArgs(validRoomCode(), "Alex", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(errors.New("insert error"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.driver.Create(r.ctx, room)

			if tc.expectError {
				assert.Error(t, err)
				if tc.expectedError != nil {
					assert.ErrorIs(t, err, tc.expectedError)
				} else {
					assert.NotErrorIs(t, err, usecase_room.ErrCodeConflict)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *RoomInfraUnitSuite) TestByCode(t provider.T) {
	t.Parallel()

	columns := []string{"code", "partner1_name", "partner2_name", "created_at"}

	testCases := []struct {
		name            string
		setupMocks      func(r *resources)
		expectedPartner *string
		expectedError   error
		expectError     bool
	}{
		{
			name: "Should load room with single partner",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT code, partner1_name, partner2_name, created_at").
					WithArgs(validRoomCode()).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(validRoomCode(), "Alex", nil, createdAt))
			},
		},
		{
			name: "Should load room with both partners",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT code, partner1_name, partner2_name, created_at").
					WithArgs(validRoomCode()).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(validRoomCode(), "Alex", "Sam", createdAt))
			},
			expectedPartner: func() *string { s := "Sam"; return &s }(),
		},
		{
			name: "Should map no rows to not found",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT code, partner1_name, partner2_name, created_at").
					WithArgs(validRoomCode()).
					WillReturnError(sql.ErrNoRows)
			},
			expectError:   true,
			expectedError: usecase_room.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			room, err := r.driver.ByCode(r.ctx, validRoomCode())

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Alex", room.Partner1Name)
				assert.Equal(t, tc.expectedPartner, room.Partner2Name)
				assert.True(t, room.CreatedAt.Equal(createdAt))
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *RoomInfraUnitSuite) TestSetSecondPartner(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should set partner",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("UPDATE rooms").
					WithArgs("Sam", validRoomCode()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Should return not found when no rows affected",
			setupMocks: func(r *resources) {
				r.mock.ExpectExec("UPDATE rooms").
					WithArgs("Sam", validRoomCode()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectError:   true,
			expectedError: usecase_room.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.driver.SetSecondPartner(r.ctx, validRoomCode(), "Sam")

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestRoomInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RoomInfraUnitSuite))
}

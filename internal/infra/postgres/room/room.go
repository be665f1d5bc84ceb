package infra_postgres_room

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/humanbelnik/distancehug/internal/model"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	Code         string         `db:"code"`
	Partner1Name string         `db:"partner1_name"`
	Partner2Name sql.NullString `db:"partner2_name"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r roomDTO) toDomain() model.Room {
	room := model.Room{
		Code:         r.Code,
		Partner1Name: r.Partner1Name,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.Partner2Name.Valid {
		name := r.Partner2Name.String
		room.Partner2Name = &name
	}
	return room
}

func (d *Driver) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM rooms WHERE code = $1)`

	if err := d.db.GetContext(ctx, &exists, query, code); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) Create(ctx context.Context, room model.Room) error {
	dto := roomDTO{
		Code:         room.Code,
		Partner1Name: room.Partner1Name,
		CreatedAt:    room.CreatedAt,
	}
	if room.Partner2Name != nil {
		dto.Partner2Name = sql.NullString{String: *room.Partner2Name, Valid: true}
	}

	query := `
		INSERT INTO rooms (code, partner1_name, partner2_name, created_at)
		VALUES (:code, :partner1_name, :partner2_name, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return usecase_room.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (d *Driver) ByCode(ctx context.Context, code string) (model.Room, error) {
	var room roomDTO

	query := `
        SELECT code, partner1_name, partner2_name, created_at
        FROM rooms
        WHERE code = $1
    `

	err := d.db.GetContext(ctx, &room, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, usecase_room.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	return room.toDomain(), nil
}

func (d *Driver) SetSecondPartner(ctx context.Context, code string, name string) error {
	query := `
        UPDATE rooms
        SET partner2_name = $1
        WHERE code = $2
    `

	result, err := d.db.ExecContext(ctx, query, name, code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

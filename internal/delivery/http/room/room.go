package http_room

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_room "github.com/humanbelnik/distancehug/internal/usecase/room"
)

type Controller struct {
	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_room.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.POST("/create", c.create)
		rooms.POST("/join", c.join)
		rooms.GET("/:code", c.get)
	}
}

type CreateRequestDTO struct {
	PartnerName *string `json:"partner_name" binding:"required" example:"Alex"`
}

type CreateResponseDTO struct {
	Code        string `json:"code" example:"K7Q2ZD"`
	PartnerName string `json:"partner_name" example:"Alex"`
}

// Create opens a new room
// @Summary Create a room
// @Description Allocates a fresh 6-character code and records the caller as the first partner
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "First partner"
// @Success 200 {object} CreateResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Failure 503 {object} http_common.ErrorResponse "No free code found"
// @Router /rooms/create [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	room, err := c.usecase.Create(ctx, *req.PartnerName)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		if errors.Is(err, usecase_room.ErrRoomsUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Detail: "unavailable",
			})
			return
		}
		http_common.InternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, CreateResponseDTO{
		Code:        room.Code,
		PartnerName: room.Partner1Name,
	})
}

type JoinRequestDTO struct {
	Code        *string `json:"code" binding:"required" example:"K7Q2ZD"`
	PartnerName *string `json:"partner_name" binding:"required" example:"Sam"`
}

type JoinResponseDTO struct {
	Code         string `json:"code" example:"K7Q2ZD"`
	Partner1Name string `json:"partner1_name" example:"Alex"`
	Partner2Name string `json:"partner2_name" example:"Sam"`
}

// Join takes the second partner slot
// @Summary Join a room
// @Description Records the caller as the second partner of an existing room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body JoinRequestDTO true "Room code and second partner"
// @Success 200 {object} JoinResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Room is full or malformed body"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/join [post]
func (c *Controller) join(ctx *gin.Context) {
	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	room, err := c.usecase.Join(ctx, *req.Code, *req.PartnerName)
	if err != nil {
		switch {
		case errors.Is(err, usecase_room.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Detail: "Room not found",
			})
		case errors.Is(err, usecase_room.ErrRoomFull):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Detail: "Room is full",
			})
		default:
			c.logger.Error("failed to join room", slog.String("error", err.Error()))
			http_common.InternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, JoinResponseDTO{
		Code:         room.Code,
		Partner1Name: room.Partner1Name,
		Partner2Name: *req.PartnerName,
	})
}

type RoomResponseDTO struct {
	Code         string    `json:"code" example:"K7Q2ZD"`
	Partner1Name string    `json:"partner1_name" example:"Alex"`
	Partner2Name *string   `json:"partner2_name" example:"Sam"`
	CreatedAt    time.Time `json:"created_at"`
}

func toRoomResponse(room model.Room) RoomResponseDTO {
	return RoomResponseDTO{
		Code:         room.Code,
		Partner1Name: room.Partner1Name,
		Partner2Name: room.Partner2Name,
		CreatedAt:    room.CreatedAt,
	}
}

// Get returns a room
// @Summary Get a room
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} RoomResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /rooms/{code} [get]
func (c *Controller) get(ctx *gin.Context) {
	room, err := c.usecase.Get(ctx, ctx.Param("code"))
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Detail: "Room not found",
			})
			return
		}
		c.logger.Error("failed to get room", slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, toRoomResponse(room))
}

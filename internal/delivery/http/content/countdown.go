package http_content

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type Countdown struct {
	base
	usecase *usecase_content.Singleton[model.Countdown]
}

func NewCountdown(usecase *usecase_content.Singleton[model.Countdown], opts ...ControllerOption) *Countdown {
	return &Countdown{base: newBase(opts), usecase: usecase}
}

func (c *Countdown) RegisterRoutes(router *gin.RouterGroup) {
	countdown := router.Group("/countdown")
	{
		countdown.POST("/set", c.set)
		countdown.GET("/:room_code", c.get)
	}
}

type SetCountdownRequestDTO struct {
	RoomCode   *string `json:"room_code" binding:"required" example:"K7Q2ZD"`
	EventName  *string `json:"event_name" binding:"required" example:"Next visit"`
	TargetDate *string `json:"target_date" binding:"required" example:"2026-03-01"`
}

type CountdownDTO struct {
	RoomCode   string    `json:"room_code"`
	EventName  string    `json:"event_name"`
	TargetDate string    `json:"target_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// @Summary Set the countdown
// @Description Creates the room countdown or replaces its event
// @Tags Countdown
// @Accept json
// @Produce json
// @Param request body SetCountdownRequestDTO true "Countdown"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /countdown/set [post]
func (c *Countdown) set(ctx *gin.Context) {
	var req SetCountdownRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	err := c.usecase.Replace(ctx, *req.RoomCode, model.Countdown{
		EventName:  *req.EventName,
		TargetDate: *req.TargetDate,
	})
	if err != nil {
		c.logger.Error("failed to set countdown",
			slog.String("room_code", *req.RoomCode),
			slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}

	http_common.Success(ctx)
}

// @Summary Get the countdown
// @Description null when the room has no countdown yet
// @Tags Countdown
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} CountdownDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /countdown/{room_code} [get]
func (c *Countdown) get(ctx *gin.Context) {
	roomCode := ctx.Param("room_code")

	doc, ok, err := c.usecase.Current(ctx, roomCode)
	if err != nil {
		c.logger.Error("failed to get countdown",
			slog.String("room_code", roomCode),
			slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}

	if !ok {
		ctx.JSON(http.StatusOK, nil)
		return
	}

	ctx.JSON(http.StatusOK, CountdownDTO{
		RoomCode:   doc.RoomCode,
		EventName:  doc.Value.EventName,
		TargetDate: doc.Value.TargetDate,
		CreatedAt:  doc.CreatedAt,
	})
}

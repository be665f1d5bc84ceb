package http_content

import (
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type Flowers struct {
	base
	usecase *usecase_content.Log[model.Flower]
}

func NewFlowers(usecase *usecase_content.Log[model.Flower], opts ...ControllerOption) *Flowers {
	return &Flowers{base: newBase(opts), usecase: usecase}
}

func (c *Flowers) RegisterRoutes(router *gin.RouterGroup) {
	flowers := router.Group("/flowers")
	{
		flowers.POST("/send", c.send)
		flowers.GET("/:room_code", c.list)
	}
}

type SendFlowerRequestDTO struct {
	RoomCode   *string `json:"room_code" binding:"required" example:"K7Q2ZD"`
	Sender     *string `json:"sender" binding:"required" example:"Alex"`
	FlowerType *string `json:"flower_type" binding:"required" example:"rose"`
	Message    *string `json:"message" example:"thinking of you"`
}

type FlowerDTO struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	RoomCode   string    `json:"room_code" example:"K7Q2ZD"`
	Sender     string    `json:"sender" example:"Alex"`
	FlowerType string    `json:"flower_type" example:"rose"`
	Message    *string   `json:"message"`
	SentAt     time.Time `json:"sent_at"`
}

// @Summary Send a flower
// @Tags Flowers
// @Accept json
// @Produce json
// @Param request body SendFlowerRequestDTO true "Flower"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /flowers/send [post]
func (c *Flowers) send(ctx *gin.Context) {
	var req SendFlowerRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	appendEntry(ctx, c.base, c.usecase, "flower", *req.RoomCode, model.Flower{
		Sender:     *req.Sender,
		FlowerType: *req.FlowerType,
		Message:    req.Message,
	})
}

// @Summary List flowers
// @Description Newest first, at most 100
// @Tags Flowers
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} FlowerDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /flowers/{room_code} [get]
func (c *Flowers) list(ctx *gin.Context) {
	listRecent(ctx, c.base, c.usecase, "flowers", func(e model.Entry[model.Flower]) FlowerDTO {
		return FlowerDTO{
			ID:         e.ID.String(),
			RoomCode:   e.RoomCode,
			Sender:     e.Payload.Sender,
			FlowerType: e.Payload.FlowerType,
			Message:    e.Payload.Message,
			SentAt:     e.SentAt,
		}
	})
}

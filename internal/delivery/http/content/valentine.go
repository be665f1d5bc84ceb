package http_content

import (
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type ValentineCards struct {
	base
	usecase *usecase_content.Log[model.ValentineCard]
}

func NewValentineCards(usecase *usecase_content.Log[model.ValentineCard], opts ...ControllerOption) *ValentineCards {
	return &ValentineCards{base: newBase(opts), usecase: usecase}
}

func (c *ValentineCards) RegisterRoutes(router *gin.RouterGroup) {
	cards := router.Group("/valentine")
	{
		cards.POST("/send", c.send)
		cards.GET("/:room_code", c.list)
	}
}

type SendValentineCardRequestDTO struct {
	RoomCode *string `json:"room_code" binding:"required" example:"K7Q2ZD"`
	Sender   *string `json:"sender" binding:"required" example:"Alex"`
	CardType *string `json:"card_type" binding:"required" example:"classic"`
	Message  *string `json:"message" binding:"required" example:"be mine"`
}

type ValentineCardDTO struct {
	ID       string    `json:"id"`
	RoomCode string    `json:"room_code"`
	Sender   string    `json:"sender"`
	CardType string    `json:"card_type"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sent_at"`
}

// @Summary Send a valentine card
// @Tags Valentine
// @Accept json
// @Produce json
// @Param request body SendValentineCardRequestDTO true "Card"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /valentine/send [post]
func (c *ValentineCards) send(ctx *gin.Context) {
	var req SendValentineCardRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	appendEntry(ctx, c.base, c.usecase, "valentine card", *req.RoomCode, model.ValentineCard{
		Sender:   *req.Sender,
		CardType: *req.CardType,
		Message:  *req.Message,
	})
}

// @Summary List valentine cards
// @Description Newest first, at most 50
// @Tags Valentine
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} ValentineCardDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /valentine/{room_code} [get]
func (c *ValentineCards) list(ctx *gin.Context) {
	listRecent(ctx, c.base, c.usecase, "valentine cards", func(e model.Entry[model.ValentineCard]) ValentineCardDTO {
		return ValentineCardDTO{
			ID:       e.ID.String(),
			RoomCode: e.RoomCode,
			Sender:   e.Payload.Sender,
			CardType: e.Payload.CardType,
			Message:  e.Payload.Message,
			SentAt:   e.SentAt,
		}
	})
}

package http_content

import (
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type Messages struct {
	base
	usecase *usecase_content.Log[model.Note]
}

func NewMessages(usecase *usecase_content.Log[model.Note], opts ...ControllerOption) *Messages {
	return &Messages{base: newBase(opts), usecase: usecase}
}

func (c *Messages) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	{
		messages.POST("/send", c.send)
		messages.GET("/:room_code", c.list)
	}
}

type SendMessageRequestDTO struct {
	RoomCode *string `json:"room_code" binding:"required" example:"K7Q2ZD"`
	Sender   *string `json:"sender" binding:"required" example:"Sam"`
	Content  *string `json:"content" binding:"required" example:"miss you"`
}

type MessageDTO struct {
	ID       string    `json:"id"`
	RoomCode string    `json:"room_code"`
	Sender   string    `json:"sender"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

// @Summary Send a note
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequestDTO true "Note"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /messages/send [post]
func (c *Messages) send(ctx *gin.Context) {
	var req SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	appendEntry(ctx, c.base, c.usecase, "message", *req.RoomCode, model.Note{
		Sender:  *req.Sender,
		Content: *req.Content,
	})
}

// @Summary List notes
// @Description Newest first, at most 100
// @Tags Messages
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} MessageDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /messages/{room_code} [get]
func (c *Messages) list(ctx *gin.Context) {
	listRecent(ctx, c.base, c.usecase, "messages", func(e model.Entry[model.Note]) MessageDTO {
		return MessageDTO{
			ID:       e.ID.String(),
			RoomCode: e.RoomCode,
			Sender:   e.Payload.Sender,
			Content:  e.Payload.Content,
			SentAt:   e.SentAt,
		}
	})
}

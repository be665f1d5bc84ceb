package http_content

import (
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type Hugs struct {
	base
	usecase *usecase_content.Log[model.Hug]
}

func NewHugs(usecase *usecase_content.Log[model.Hug], opts ...ControllerOption) *Hugs {
	return &Hugs{base: newBase(opts), usecase: usecase}
}

func (c *Hugs) RegisterRoutes(router *gin.RouterGroup) {
	hugs := router.Group("/hugs")
	{
		hugs.POST("/send", c.send)
		hugs.GET("/:room_code", c.list)
	}
}

type SendHugRequestDTO struct {
	RoomCode *string `json:"room_code" binding:"required" example:"K7Q2ZD"`
	Sender   *string `json:"sender" binding:"required" example:"Sam"`
	HugType  *string `json:"hug_type" binding:"required" example:"bear"`
}

type HugDTO struct {
	ID       string    `json:"id"`
	RoomCode string    `json:"room_code"`
	Sender   string    `json:"sender"`
	HugType  string    `json:"hug_type"`
	SentAt   time.Time `json:"sent_at"`
}

// @Summary Send a hug
// @Tags Hugs
// @Accept json
// @Produce json
// @Param request body SendHugRequestDTO true "Hug"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /hugs/send [post]
func (c *Hugs) send(ctx *gin.Context) {
	var req SendHugRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	appendEntry(ctx, c.base, c.usecase, "hug", *req.RoomCode, model.Hug{
		Sender:  *req.Sender,
		HugType: *req.HugType,
	})
}

// @Summary List hugs
// @Description Newest first, at most 50
// @Tags Hugs
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} HugDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /hugs/{room_code} [get]
func (c *Hugs) list(ctx *gin.Context) {
	listRecent(ctx, c.base, c.usecase, "hugs", func(e model.Entry[model.Hug]) HugDTO {
		return HugDTO{
			ID:       e.ID.String(),
			RoomCode: e.RoomCode,
			Sender:   e.Payload.Sender,
			HugType:  e.Payload.HugType,
			SentAt:   e.SentAt,
		}
	})
}

package http_content

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/distancehug/internal/delivery/http/common"
	"github.com/humanbelnik/distancehug/internal/model"
	usecase_content "github.com/humanbelnik/distancehug/internal/usecase/content"
)

type BucketList struct {
	base
	usecase *usecase_content.Singleton[model.BucketList]
}

func NewBucketList(usecase *usecase_content.Singleton[model.BucketList], opts ...ControllerOption) *BucketList {
	return &BucketList{base: newBase(opts), usecase: usecase}
}

func (c *BucketList) RegisterRoutes(router *gin.RouterGroup) {
	bucketList := router.Group("/bucketlist")
	{
		bucketList.POST("/update", c.update)
		bucketList.GET("/:room_code", c.get)
	}
}

type BucketListItemDTO struct {
	Text      string `json:"text" example:"See the northern lights"`
	Completed bool   `json:"completed" example:"false"`
}

type UpdateBucketListItemDTO struct {
	Text      *string `json:"text" binding:"required" example:"See the northern lights"`
	Completed bool    `json:"completed" example:"false"`
}

type UpdateBucketListRequestDTO struct {
	RoomCode *string                   `json:"room_code" binding:"required" example:"K7Q2ZD"`
	Items    []UpdateBucketListItemDTO `json:"items" binding:"required,dive"`
}

type BucketListDTO struct {
	RoomCode string              `json:"room_code"`
	Items    []BucketListItemDTO `json:"items"`
}

// @Summary Replace the bucket list
// @Description The whole list is replaced, items keep their order
// @Tags BucketList
// @Accept json
// @Produce json
// @Param request body UpdateBucketListRequestDTO true "Bucket list"
// @Success 200 {object} http_common.SuccessResponse
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /bucketlist/update [post]
func (c *BucketList) update(ctx *gin.Context) {
	var req UpdateBucketListRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.InvalidRequest(ctx)
		return
	}

	items := make([]model.BucketListItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.BucketListItem{Text: *item.Text, Completed: item.Completed})
	}

	if err := c.usecase.Replace(ctx, *req.RoomCode, model.BucketList{Items: items}); err != nil {
		c.logger.Error("failed to update bucket list",
			slog.String("room_code", *req.RoomCode),
			slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}

	http_common.Success(ctx)
}

// @Summary Get the bucket list
// @Description Empty items when the room has no list yet
// @Tags BucketList
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} BucketListDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /bucketlist/{room_code} [get]
func (c *BucketList) get(ctx *gin.Context) {
	roomCode := ctx.Param("room_code")

	doc, _, err := c.usecase.Current(ctx, roomCode)
	if err != nil {
		c.logger.Error("failed to get bucket list",
			slog.String("room_code", roomCode),
			slog.String("error", err.Error()))
		http_common.InternalError(ctx)
		return
	}

	out := BucketListDTO{
		RoomCode: roomCode,
		Items:    make([]BucketListItemDTO, 0, len(doc.Value.Items)),
	}
	for _, item := range doc.Value.Items {
		out.Items = append(out.Items, BucketListItemDTO{Text: item.Text, Completed: item.Completed})
	}

	ctx.JSON(http.StatusOK, out)
}

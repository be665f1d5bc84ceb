package http_root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const greeting = "Distance Hug API"

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.index)
}

type IndexResponseDTO struct {
	Message string `json:"message" example:"Distance Hug API"`
}

// @Summary API banner
// @Tags Root
// @Produce json
// @Success 200 {object} IndexResponseDTO
// @Router / [get]
func (c *Controller) index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, IndexResponseDTO{Message: greeting})
}

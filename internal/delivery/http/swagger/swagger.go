package http_swagger

import (
	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/distancehug/internal/delivery/http/swagger/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controller serves the Swagger UI and the Distance Hug API document
// registered by the docs package.
type Controller struct {
	instance string
}

func New() *Controller {
	return &Controller{instance: docs.SwaggerInfo.InstanceName()}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(c.instance),
		ginSwagger.DocExpansion("list"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

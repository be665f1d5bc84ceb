package http_common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Room not found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

func InvalidRequest(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Detail: "invalid request format",
	})
}

func InternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Detail: "internal error",
	})
}

func Success(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

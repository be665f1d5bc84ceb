package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ModeReadOnly = "RO"

// ReadOnlyBadGatewayMiddleware lets only reads through on a read-only instance.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"detail": "Write operations not allowed on read-only instance",
			"code":   "READ_ONLY_INSTANCE",
		})
	}
}

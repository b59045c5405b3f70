package middlewares

import (
	"foodmarket/pkg/resp"
	"foodmarket/utils"

	"github.com/gin-gonic/gin"
)

// RequireAJAX rejects calls that do not carry the XMLHttpRequest header.
// The rejection is itself a 200 with a failed status, matching the rest of
// the AJAX contract.
func RequireAJAX() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAJAX(c) {
			resp.Failed(c, "Invalid request")
			c.Abort()
			return
		}
		c.Next()
	}
}

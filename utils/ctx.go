package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user's id, or 0 for guests. The
// auth middlewares store it as a uint.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated user's role, or "" for guests.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsAJAX reports whether the request carries the XMLHttpRequest marker the
// storefront's cart widgets send.
func IsAJAX(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

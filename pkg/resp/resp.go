package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Storefront AJAX contract: always HTTP 200, outcome carried in "status".
const (
	StatusSuccess       = "success"
	StatusFailed        = "failed"
	StatusLoginRequired = "login_required"
)

func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"status": StatusSuccess}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Failed(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"status": StatusFailed, "message": msg})
}

func LoginRequired(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": StatusLoginRequired, "message": "Please login to continue"})
}

// Plain API helpers for the non-AJAX surface (auth, partner menu).
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

package httpapi

import (
	"net/http"

	"tailorspace/internal/core/apperr"

	"github.com/gin-gonic/gin"
)

// The response envelope is {message, data, status} on every endpoint. Story,
// post, follow and user endpoints carry a boolean status; actor endpoints
// carry the numeric status code instead. Both shapes predate this service
// and existing clients depend on them.

func respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"message": message,
		"data":    data,
		"status":  code < http.StatusBadRequest,
	})
}

func respondErr(c *gin.Context, err error) {
	respond(c, statusOf(err), err.Error(), nil)
}

func respondActor(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"message": message,
		"data":    data,
		"status":  code,
	})
}

func respondActorErr(c *gin.Context, err error) {
	respondActor(c, statusOf(err), err.Error(), nil)
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

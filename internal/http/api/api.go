package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is returned by handlers to produce a {"error": Message} body.
type Error struct {
	Code    int
	Message string
}

func BadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

type HandlerFunc func(ctx *gin.Context) (any, *Error)

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, err := h(ctx)
		if err != nil {
			ctx.JSON(err.Code, gin.H{"error": err.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

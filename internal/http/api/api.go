package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a handler failure with the HTTP status it maps to.
type Error struct {
	Code    int
	Message string
}

// HandlerFunc is an endpoint that returns either a JSON-serializable
// result or an Error.
type HandlerFunc func(ctx *gin.Context) (any, *Error)

// ResolveEndpoint adapts a HandlerFunc to gin, rendering errors as
// {"error": message} with the handler's status code.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every failed request.
// Example: { "error": "Product name and category are required" }
type errorResponse struct {
	Error string `json:"error"`
}

// JSONError sends an error response and stops the handler chain.
func JSONError(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, msg)
}

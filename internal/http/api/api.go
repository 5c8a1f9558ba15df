package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Tech-LLC/lumen/internal/http/middleware"
	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		// handlers that need a non-200 status write the response themselves
		if ctx.Writer.Written() {
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		if ctx.Writer.Written() {
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

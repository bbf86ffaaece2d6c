package handlers

import (
	"errors"
	"net/http"

	"github.com/JosephVasc/arenameta/internal/blizzard"
	"github.com/gin-gonic/gin"
)

// Data related functions
func BindModel[T any](ctx *gin.Context) *T {
	var model T
	if err := ctx.ShouldBindJSON(&model); err != nil {
		BadRequest(ctx, err.Error())
		return nil
	}

	return &model
}

// Return Types for Controllers
func Ok(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, data)
}

// Message writes the soft not-found / confirmation shape the original API
// uses: a 200 with an explanatory message body.
func Message(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

func BadRequest(ctx *gin.Context, detail string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}

func Unauthorized(ctx *gin.Context, detail string) {
	ctx.JSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

func InternalServerError(ctx *gin.Context, detail string) {
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": detail})
}

// UpstreamFailure maps provider errors onto responses: missing credentials is
// a 500, a non-2xx from Battle.net forwards its status with the body in the
// detail, anything else is a plain 500.
func UpstreamFailure(ctx *gin.Context, err error) {
	if errors.Is(err, blizzard.ErrNotConfigured) {
		InternalServerError(ctx, "Blizzard API credentials not configured")
		return
	}

	var upstreamErr *blizzard.UpstreamError
	if errors.As(err, &upstreamErr) {
		ctx.JSON(upstreamErr.StatusCode, gin.H{"detail": err.Error()})
		return
	}

	InternalServerError(ctx, err.Error())
}

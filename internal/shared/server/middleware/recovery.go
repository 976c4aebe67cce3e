package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/respond"
	"resume-ats/internal/shared/telemetry"
)

// Recovery turns panics into a logged 500 INTERNAL_ERROR response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		telemetry.Error("panic", map[string]any{
			"request_id": RequestIDFromContext(c),
			"error":      fmt.Sprint(rec),
			"stack":      string(debug.Stack()),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error", nil)
	})
}

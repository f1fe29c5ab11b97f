package middleware

import (
	"log/slog"
	"net/http"

	"spot-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// ErrorHandler renders errors a handler recorded without writing a response.
// The last public error wins; anything else becomes a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		if public := c.Errors.ByType(gin.ErrorTypePublic).Last(); public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"route", c.FullPath(),
			"error", c.Errors.Last().Error())
		httperr.AbortWithStatus(c, http.StatusInternalServerError, msgInternal)
	}
}

// CustomRecovery must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"panic", recovered)
		httperr.AbortWithStatus(c, http.StatusInternalServerError, msgInternal)
	})
}

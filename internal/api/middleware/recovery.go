package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/sevos/internal/common"
)

// Recovery turns a handler panic into a 500 with the same body shape as
// every other API error. A panic after the response has started only aborts
// the chain. http.ErrAbortHandler is re-raised so net/http drops the
// connection as it expects.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			common.LoggerFrom(c.Request.Context(), logger).Error("Handler panicked",
				"route", c.FullPath(),
				"method", c.Request.Method,
				"panic", rec,
				"stack", string(debug.Stack()))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "Request failed",
				"request_id": GetRequestID(c),
			})
		}()

		c.Next()
	}
}

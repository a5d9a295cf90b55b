package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/sevos/internal/common"
)

// handle binds the JSON body into Req, runs fn and writes the result.
// label names the operation in error bodies, as in "Classification failed".
func handle[Req, Res any](label string, fn func(context.Context, Req) (Res, error), logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, logger, label, &common.InputError{Violations: []common.Violation{bindViolation(err)}})
			return
		}

		result, err := fn(c.Request.Context(), req)
		if err != nil {
			writeError(c, logger, label, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

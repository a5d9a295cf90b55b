package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/sevos/internal/api/middleware"
	"github.com/Veraticus/sevos/internal/coerce"
	"github.com/Veraticus/sevos/internal/common"
)

// errorBody is the JSON shape of every error response. Provider and
// configuration failures never carry details.
type errorBody struct {
	Error     string             `json:"error"`
	Details   []common.Violation `json:"details,omitempty"`
	RequestID string             `json:"request_id,omitempty"`
}

// writeError maps err to a status and a body that exposes no internals.
func writeError(c *gin.Context, logger *slog.Logger, label string, err error) {
	status, body := describeError(label, err)
	body.RequestID = middleware.GetRequestID(c)

	_ = c.Error(err)
	common.LoggerFrom(c.Request.Context(), logger).Warn("request failed",
		"operation", label,
		"status", status,
		"error", err)

	c.AbortWithStatusJSON(status, body)
}

func describeError(label string, err error) (int, errorBody) {
	var inputErr *common.InputError
	var coercionErr *coerce.CoercionError

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, errorBody{Error: "Invalid input", Details: inputErr.Violations}
	case errors.As(err, &coercionErr):
		return http.StatusUnprocessableEntity, errorBody{Error: label + " failed", Details: coercionErr.Violations}
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: "Not found"}
	case errors.Is(err, common.ErrTimeout):
		return http.StatusGatewayTimeout, errorBody{Error: label + " timed out"}
	case errors.Is(err, common.ErrMissingConfig), errors.Is(err, common.ErrInvalidConfig):
		return http.StatusServiceUnavailable, errorBody{Error: label + " unavailable"}
	default:
		return http.StatusInternalServerError, errorBody{Error: label + " failed"}
	}
}

// bindViolation describes why a request body could not be decoded.
func bindViolation(err error) common.Violation {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return common.Violation{Field: typeErr.Field, Constraint: "must be " + kindName(typeErr.Type)}
	case errors.Is(err, io.EOF):
		return common.Violation{Field: "body", Constraint: "required"}
	default:
		return common.Violation{Field: "body", Constraint: "must be a valid JSON object"}
	}
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

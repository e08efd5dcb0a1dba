package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"food_order/internal/middleware"
	"food_order/internal/validation"

	"github.com/gin-gonic/gin"
)

// serverError logs err and writes a 500. The error text is only exposed in
// development.
func serverError(c *gin.Context, devMode bool, message string, err error) {
	slog.ErrorContext(c.Request.Context(), message, "error", err)
	body := gin.H{"message": message}
	if devMode {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func validationFailed(c *gin.Context, fields []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
}

// getAuthUserID reads the user id stored by the JWT middleware
func getAuthUserID(c *gin.Context) (int64, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindFieldErrors turns a JSON decoding failure into field errors
func bindFieldErrors(err error) []validation.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		msg := fmt.Sprintf("%q must be a %s", typeErr.Field, jsonKind(typeErr.Type))
		return validation.NewError(typeErr.Field, msg).Fields
	}
	return validation.NewError("body", "request body must be a valid JSON object").Fields
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	default:
		return "object"
	}
}

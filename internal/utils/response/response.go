// Package response writes the JSON envelope every endpoint answers with.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error writes AppErrors with their own status; anything else is a 500 that
// hides the underlying message.
func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		appErr = errors.InternalError("An unexpected error occurred")
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	WriteJson(w, appErr.StatusCode, APIResponse{Success: false, Error: body})
}

// ValidationError answers 400 with one readable line per failing field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, describe(fe))
	}

	WriteJson(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}

func describe(fe validator.FieldError) string {

	field := fe.Field()

	// min and max bound the length of strings and slices but the value of numbers
	bound := func(word string) string {
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Field %s must be %s %s characters", field, word, fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("Field %s must have %s %s entries", field, word, fe.Param())
		default:
			return fmt.Sprintf("Field %s must be %s %s", field, word, fe.Param())
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", field)
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", field)
	case "min":
		return bound("at least")
	case "max":
		return bound("at most")
	case "gt":
		return fmt.Sprintf("Field %s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("Field %s must be %s or more", field, fe.Param())
	case "lte":
		return fmt.Sprintf("Field %s must be %s or less", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("Field %s must match the layout %s", field, fe.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", field, fe.Tag(), fe.Param())
	}
}

package utils

import (
	stdErrors "errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// NewValidator reports failing fields by their JSON names.
func NewValidator() *validator.Validate {

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	return v
}

// ParseAndValidate decodes the body into dest and validates it. On failure it
// has already written the error response and returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(w, r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("endpoint", r.URL.Path), slog.String("error", err.Error()))
		response.Error(w, errors.BadRequestError(err.Error()).WithError(err))
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if stdErrors.As(err, &validationErrs) {
			logger.Warn("Validation failed", slog.String("endpoint", r.URL.Path), slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
			return false
		}

		logger.Error("Unexpected validation error", slog.String("error", err.Error()))
		response.Error(w, errors.InternalError("Failed to validate request").WithError(err))
		return false
	}

	return true
}

// Package errors carries the application error type every layer returns and
// the HTTP status each error code maps to.
package errors

import (
	"errors"
	"net/http"
)

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeDuplicateEntry    = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError   = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
)

var statusByCode = map[string]int{
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeUnauthorized:      http.StatusUnauthorized,
	ErrCodeForbidden:         http.StatusForbidden,
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeDatabaseError:     http.StatusInternalServerError,
	ErrCodeDuplicateEntry:    http.StatusConflict,
	ErrCodeThirdPartyError:   http.StatusBadGateway,
	ErrCodeTooManyRequests:   http.StatusTooManyRequests,
	ErrCodeConflict:          http.StatusConflict,
	ErrCodeInvalidTransition: http.StatusConflict,
}

// AppError is safe to show to clients: Message and Detail are written to the
// response, Err is only logged.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an error whose status follows its code; unknown codes answer 500.
func New(code, message string) *AppError {

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return &AppError{Code: code, Message: message, StatusCode: status}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func ValidationError(message string) *AppError      { return New(ErrCodeValidation, message) }
func BadRequestError(message string) *AppError      { return New(ErrCodeBadRequest, message) }
func NotFoundError(message string) *AppError        { return New(ErrCodeNotFound, message) }
func UnauthorizedError(message string) *AppError    { return New(ErrCodeUnauthorized, message) }
func ForbiddenError(message string) *AppError       { return New(ErrCodeForbidden, message) }
func InternalError(message string) *AppError        { return New(ErrCodeInternal, message) }
func DatabaseError(message string) *AppError        { return New(ErrCodeDatabaseError, message) }
func DuplicateEntryError(message string) *AppError  { return New(ErrCodeDuplicateEntry, message) }
func ThirdPartyError(message string) *AppError      { return New(ErrCodeThirdPartyError, message) }
func TooManyRequestsError(message string) *AppError { return New(ErrCodeTooManyRequests, message) }

// ConflictError signals a clash the caller must resolve explicitly, such as
// adding an item from a second shop to a non-empty cart.
func ConflictError(message string) *AppError { return New(ErrCodeConflict, message) }

func InvalidTransitionError(message string) *AppError { return New(ErrCodeInvalidTransition, message) }

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

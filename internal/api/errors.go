package api

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "bad request"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "unauthorized"}
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "not found"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "invalid email or password"}
	ErrEmailAlreadyExists = &AppError{Code: http.StatusConflict, Message: "email already registered"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "invalid or expired token"}
	ErrValidation         = &AppError{Code: http.StatusBadRequest, Message: "validation error"}

	// ErrProfileIncomplete gates routes that build prompts from the stored
	// writing style; clients send users to onboarding on this message.
	ErrProfileIncomplete = &AppError{Code: http.StatusBadRequest, Message: "writing style not set"}

	ErrInvalidTone  = &AppError{Code: http.StatusBadRequest, Message: "unknown tone"}
	ErrInvalidNiche = &AppError{Code: http.StatusBadRequest, Message: "unknown niche"}

	// ErrLimitExceeded must stay distinguishable from every other failure so
	// clients can show the upgrade prompt instead of a generic error.
	ErrLimitExceeded = &AppError{Code: http.StatusForbidden, Message: "daily generation limit reached, upgrade to Pro for unlimited generations"}

	// ErrQuotaUnavailable is the fail-closed response when the quota store
	// cannot be read: no generation is attempted without a limit check.
	ErrQuotaUnavailable = &AppError{Code: http.StatusServiceUnavailable, Message: "usage tracking temporarily unavailable, try again shortly"}

	ErrGenerationFailed = &AppError{Code: http.StatusInternalServerError, Message: "failed to generate content"}
	ErrGenerationTimeout = &AppError{Code: http.StatusGatewayTimeout, Message: "generation took too long, try again"}
)

func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: msg}
}

func NewValidationError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

func HandleError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSONErrorMessage(w, appErr.Code, appErr.Message)
		return
	}
	JSONErrorMessage(w, http.StatusInternalServerError, "internal server error")
}

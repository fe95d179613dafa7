package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeNetwork            ErrorType = "NETWORK_ERROR"
	ErrorTypeUnauthorized       ErrorType = "UNAUTHORIZED"
	ErrorTypeValidationRejected ErrorType = "VALIDATION_REJECTED"
	ErrorTypeServer             ErrorType = "SERVER_ERROR"
	ErrorTypeDecode             ErrorType = "DECODE_ERROR"
	ErrorTypeLocalValidation    ErrorType = "LOCAL_VALIDATION_ERROR"
)

type ErrorCode string

const (
	ErrCodeRequestFailed    ErrorCode = "REQUEST_FAILED"
	ErrCodeSessionInvalid   ErrorCode = "SESSION_INVALID"
	ErrCodeServerRejected   ErrorCode = "SERVER_REJECTED"
	ErrCodeServerFault      ErrorCode = "SERVER_FAULT"
	ErrCodeTokenMalformed   ErrorCode = "TOKEN_MALFORMED"
	ErrCodeTokenMissing     ErrorCode = "TOKEN_MISSING"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
)

// AppError is the single error currency of the console. Type follows the
// failure taxonomy: network, unauthorized, server-rejected validation,
// server fault, malformed session token, or local validation.
type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// FieldError carries a server-reported or locally computed per-field cause.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type FieldErrors struct {
	Errors []FieldError `json:"errors"`
}

func NewNetworkError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeNetwork,
		Code:       ErrCodeRequestFailed,
		Message:    message,
		StatusCode: 0,
		Cause:      cause,
	}
}

func NewUnauthorizedError(message string, status int) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       ErrCodeSessionInvalid,
		Message:    message,
		StatusCode: status,
	}
}

func NewValidationRejectedError(message string, status int) *AppError {
	return &AppError{
		Type:       ErrorTypeValidationRejected,
		Code:       ErrCodeServerRejected,
		Message:    message,
		StatusCode: status,
	}
}

func NewServerError(message string, status int) *AppError {
	return &AppError{
		Type:       ErrorTypeServer,
		Code:       ErrCodeServerFault,
		Message:    message,
		StatusCode: status,
	}
}

func NewDecodeError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDecode,
		Code:    ErrCodeTokenMalformed,
		Message: message,
		Cause:   cause,
	}
}

func NewLocalValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeLocalValidation,
		Code:       ErrCodeValidationFailed,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

var (
	ErrTokenMissing = &AppError{
		Type:       ErrorTypeServer,
		Code:       ErrCodeTokenMissing,
		Message:    "token not found in response",
		StatusCode: http.StatusBadGateway,
	}
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	status := e.StatusCode
	if status == 0 {
		status = http.StatusBadGateway
	}
	return status, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

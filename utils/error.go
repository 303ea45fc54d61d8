package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures so the API layer can choose a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// AppError is the error type returned by services.
type AppError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// InvalidInput reports a missing or malformed field.
func InvalidInput(field, message string) error {
	return &AppError{Kind: KindInvalidInput, Field: field, Message: message}
}

func NotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Unauthorized(message string) error {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &AppError{Kind: KindForbidden, Message: message}
}

func Conflict(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

// Upstream wraps a failure of an external collaborator such as the payment gateway.
func Upstream(message string, err error) error {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

func Internal(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsInvalidInput(err error) bool { return KindOf(err) == KindInvalidInput }

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// RespondError writes err as a JSON error response. Internal and upstream
// detail is logged and never returned to the client.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	var appErr *AppError
	if !errors.As(err, &appErr) {
		GetLogger().Error("Unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}

	switch appErr.Kind {
	case KindInternal:
		GetLogger().Error(appErr.Message, zap.String("path", c.Request.URL.Path), zap.Error(appErr.Err))
		c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
	case KindUpstream:
		GetLogger().Error(appErr.Message, zap.String("path", c.Request.URL.Path), zap.Error(appErr.Err))
		c.JSON(status, ErrorResponse{Message: appErr.Message})
	default:
		c.JSON(status, ErrorResponse{Message: appErr.Message, Field: appErr.Field})
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

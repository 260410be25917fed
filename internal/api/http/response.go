package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes of the uniform response envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimit       = "RATE_LIMIT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func Fail(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, Response{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
	})
}

func ValidationError(c *gin.Context, message string, details any) {
	Fail(c, http.StatusBadRequest, CodeValidationError, message, details)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, CodeNotFound, message, nil)
}

func RateLimited(c *gin.Context, message string) {
	Fail(c, http.StatusTooManyRequests, CodeRateLimit, message, nil)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, CodeInternalError, message, nil)
}

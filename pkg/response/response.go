package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope returned by every endpoint,
// success or failure.
type APIResponse[T any] struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	RequestID string      `json:"requestId"`
	Timestamp time.Time   `json:"timestamp"`
}

// Success writes a success envelope with the given status code.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().UTC(),
	})
}

// Fail writes a failure envelope. errs carries optional field-level detail.
func Fail(c *gin.Context, status int, message string, errs interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, envelope(c, message, errs))
}

// AbortFail writes a failure envelope and aborts the handler chain.
// Used by middleware so no business logic runs after a rejection.
func AbortFail(c *gin.Context, status int, message string, errs interface{}) {
	c.AbortWithStatusJSON(status, envelope(c, message, errs))
}

func envelope(c *gin.Context, message string, errs interface{}) APIResponse[any] {
	return APIResponse[any]{
		Success:   false,
		Message:   message,
		Errors:    errs,
		RequestID: c.GetString("request_id"),
		Timestamp: time.Now().UTC(),
	}
}

package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "RequestID"

// Response is the envelope for messages and errors.
type Response struct {
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// DataResponse wraps a payload. Data is always present, even when empty.
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// CreatedResponse reports the id of a newly stored record.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Message sends a bare {message} body.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

// Data sends {message, data}.
func Data(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, DataResponse{Message: message, Data: data})
}

// Created sends {message, id}.
func Created(c *gin.Context, code int, message string, id int64) {
	c.JSON(code, CreatedResponse{Message: message, ID: id})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, detail string) {
	c.JSON(code, Response{
		Message:   message,
		Error:     detail,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by the RequestID middleware, if any.
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

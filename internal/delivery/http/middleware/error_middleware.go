package middleware

import (
	"net/http"

	"go-vacancy-backend/internal/delivery/http/response"
	"go-vacancy-backend/pkg/apperror"
	"go-vacancy-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// Details of storage failures reach the client only when exposeDetails is set.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			detail := appErr.Detail
			if appErr.Sensitive() {
				logger.Log.Error("storage failure",
					"request_id", response.RequestID(c),
					"path", c.FullPath(),
					"message", appErr.Message,
					"error", appErr.Err,
				)
				if !exposeDetails {
					detail = ""
				}
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("unhandled error",
			"request_id", response.RequestID(c),
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "Error interno del servidor.", "")
	}
}

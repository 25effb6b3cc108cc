package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply. Fields carries per-field
// messages of a rejected form.
type ErrorResponse struct {
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorHandler turns a panic in a later handler into a 500 ErrorResponse.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError aborts with a message and details.
func JSONError(c *gin.Context, status int, message string, details string) {
	WriteError(c, status, ErrorResponse{Message: message, Details: details})
}

// WriteError aborts with body. Server-side failures are logged at Warn,
// client mistakes at Debug.
func WriteError(c *gin.Context, status int, body ErrorResponse) {
	level := zap.DebugLevel
	if status >= http.StatusInternalServerError {
		level = zap.WarnLevel
	}
	if ce := zap.L().Check(level, body.Message); ce != nil {
		path := ""
		if c.Request != nil {
			path = c.Request.URL.Path
		}
		ce.Write(zap.Int("status", status), zap.String("details", body.Details), zap.String("path", path))
	}
	c.AbortWithStatusJSON(status, body)
}

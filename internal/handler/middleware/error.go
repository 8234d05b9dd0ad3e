package middleware

import (
	"log/slog"
	"net/http"

	"market-admin/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler guarantees every API response carries the {"error":{"message"}} body the
// dashboard UI reads, even when a handler only set a status or recorded a private error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}

		status := c.Writer.Status()
		if len(c.Errors) > 0 || status == http.StatusOK {
			// a handler that returned without responding is a bug, not a success
			status = http.StatusInternalServerError
		}
		if status < http.StatusBadRequest {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(status, fallbackResponse(c, status))
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		err := c.Errors[i]
		if !err.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := err.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func fallbackResponse(c *gin.Context, status int) httperr.Response {
	resp := httperr.Response{Status: status}
	resp.Error.Message = http.StatusText(status)
	if status >= http.StatusInternalServerError {
		resp.Error.Message = "Internal server error"
	}
	if id := GetRequestID(c); id != "" {
		resp.Detail = gin.H{"request_id": id}
	}
	return resp
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				status := http.StatusInternalServerError
				c.AbortWithStatusJSON(status, fallbackResponse(c, status))
			}
		}()
		c.Next()
	}
}

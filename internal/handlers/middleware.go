package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request once the handler chain is done.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	status := c.Writer.Status()
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"latency", time.Since(start).String(),
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}
	switch {
	case status >= 500:
		h.log.Errorw("http_request", fields...)
	case status >= 400:
		h.log.Warnw("http_request", fields...)
	default:
		h.log.Debugw("http_request", fields...)
	}
}

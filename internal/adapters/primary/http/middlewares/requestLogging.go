package middlewares

import (
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
)

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		var logLevel slog.Level
		switch {
		case status >= 500:
			logLevel = slog.LevelError
		case status >= 400:
			logLevel = slog.LevelWarn
		default:
			logLevel = slog.LevelInfo
		}

		log.LogAttrs(c.Request.Context(), logLevel, "request completed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("response_size", c.Writer.Size()),
			slog.String("remote_addr", req.RemoteAddr),
		)
	}
}

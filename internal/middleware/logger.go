package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccessLogMiddleware writes one line per request; 4xx at warn, 5xx at error.
func AccessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		logger := GetLogger(c)

		var e *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			e = logger.Error()
			if len(c.Errors) > 0 {
				e = e.Err(c.Errors.Last())
			}
		case status >= http.StatusBadRequest:
			e = logger.Warn()
		default:
			e = logger.Info()
		}

		e.Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Int("bytes", c.Writer.Size()).
			Msg("API")
	}
}

// RecoveryMiddleware turns a panic into the generic 500 body.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLogger(c).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("RecoveryMiddleware(): recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
	})
}

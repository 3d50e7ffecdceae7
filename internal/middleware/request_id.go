package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-Id"

	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// RequestIDMiddleware keeps a client supplied X-Request-Id or issues a new one,
// and stores a request-scoped logger carrying it.
func RequestIDMiddleware(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > 128 {
			rid = uuid.New().String()
		}
		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		l := base.With().Str("request_id", rid).Logger()
		c.Set(loggerKey, &l)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestIDMiddleware, if any.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// GetLogger returns the request-scoped logger, or a disabled one when the
// middleware did not run.
func GetLogger(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zerolog.Logger); ok {
			return l
		}
	}
	nop := zerolog.Nop()
	return &nop
}

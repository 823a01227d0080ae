package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"voice-to-jira/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}

// RequestLog logs one line per request with method, path, status and latency.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		if status >= 500 {
			m.l.Errorf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		m.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}

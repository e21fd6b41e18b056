package middleware

import (
	"aura-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs errors handlers attached via c.Error. Handlers have
// already written a generic body by the time this runs; the detail stays in
// the logs.
func ErrorLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if l == nil || len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			l.ErrorfCtx(c.Request.Context(), "request error: %s", e.Err.Error())
		}
	}
}

package middelware

import (
	"time"

	"hitbadge-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger logger.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log,
	}
}

// StructuredLogger logs one line per request with method, path, status
// and latency. Badge requests are high volume, so nothing is logged at
// a level above info unless the request failed.
func (m *LoggingMiddleware) StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"query":      raw,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		}

		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		log := m.logger.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			log.Error("HTTP request failed")
		case c.Writer.Status() >= 400:
			log.Warn("HTTP request completed with client error")
		default:
			log.Info("HTTP request completed")
		}
	}
}

// Recovery converts panics into a 500 response after logging them
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.RecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered: %v", recovered)

		c.JSON(500, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	})
}

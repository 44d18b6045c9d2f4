package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware logs every request with a request ID that is also
// echoed back to the caller in the X-Request-ID header.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		fields := logrus.Fields{
			"request_id": requestID[:8],
			"method":     c.Request.Method,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"path":       path,
		}

		switch {
		case c.Writer.Status() >= 500:
			logrus.WithFields(fields).Error("request failed")
		case c.Writer.Status() >= 400:
			logrus.WithFields(fields).Warn("request rejected")
		default:
			logrus.WithFields(fields).Info("request completed")
		}

		for _, e := range c.Errors {
			logrus.WithField("request_id", requestID[:8]).WithError(e.Err).Error("handler error")
		}
	}
}

package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// Logger пишет в лог каждый запрос. Если клиент не передал X-Request-ID, он генерируется и возвращается
// в заголовке ответа.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "api",
		"module":    "http",
	})
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"requestID": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"clientIP":  c.ClientIP(),
		}
		if customerID, ok := c.Get(CurrentCustomerIDKey); ok {
			fields["customerID"] = customerID
		}
		reqEntry := entry.WithFields(fields)

		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			reqEntry = reqEntry.WithField("errors", errs.String())
		}

		switch {
		case status >= 500: //nolint:mnd
			reqEntry.Error("request")
		case status >= 400: //nolint:mnd
			reqEntry.Warn("request")
		default:
			reqEntry.Info("request")
		}
	}
}

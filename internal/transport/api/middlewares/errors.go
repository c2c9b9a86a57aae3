package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusBadGateway:
		return "payment gateway error"
	default:
		return "internal server error"
	}
}

// Errors отдает клиенту первую ошибку из контекста. Текст публичных ошибок показывается как есть,
// для остальных - только общее описание статуса. Если хендлер уже записал тело ответа,
// ничего не делает.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()
		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) && status < http.StatusInternalServerError {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(status)
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(status, msg)
		} else {
			c.JSON(status, gin.H{"error": msg})
		}
		c.Abort()
	}
}

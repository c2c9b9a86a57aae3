package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(rate.Limit(1), 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, l.Allow("10.0.0.2"), "other client has its own bucket")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "token refilled")

	now = now.Add(visitorTTL + time.Minute)
	l.Allow("10.0.0.3")
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.visitors, 1, "stale visitors pruned")
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(NewIPRateLimiter(rate.Limit(0.001), 1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestErrors(t *testing.T) {
	r := gin.New()
	r.Use(Errors())
	r.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("name: is required")).SetType(gin.ErrorTypePublic)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusNotFound, errors.New("finding order by id 3: no rows")).
			SetType(gin.ErrorTypePrivate)
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("pool closed")).SetType(gin.ErrorTypePublic)
	})
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("ignored"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "custom"})
	})

	tests := []struct {
		name    string
		path    string
		accept  string
		status  int
		message string
	}{
		{name: "public message", path: "/public", status: http.StatusBadRequest, message: "name: is required"},
		{name: "private message hidden", path: "/private", status: http.StatusNotFound, message: "not found"},
		{
			name:    "5xx always generic",
			path:    "/internal",
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
		{name: "handler body kept", path: "/written", status: http.StatusBadRequest, message: "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])
		})
	}

	t.Run("plain text", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Accept", "text/plain")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not found", w.Body.String())
	})
}

func TestLoggerRequestID(t *testing.T) {
	r := gin.New()
	l := logrus.New()
	l.SetOutput(io.Discard)
	r.Use(Logger(l))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}

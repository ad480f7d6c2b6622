//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"order-offer-service/internal/handler/httperr"
	"order-offer-service/internal/handler/middleware"
	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/pkg/errs"
	"order-offer-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware(logger), middleware.ErrorHandler())
	r.GET("/ping", func(c *gin.Context) {
		middleware.SetUserID(c, 42)
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c), "user_id": id})
	})
	r.GET("/boom", func(c *gin.Context) {
		httperr.Abort(c, errs.New("unexpected"))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter(t)

	t.Run("echoes the caller's request id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})

		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "req-123"})
		var body struct {
			RequestID string `json:"request_id"`
			UserID    int64  `json:"user_id"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "req-123", body.RequestID)
		assert.Equal(t, int64(42), body.UserID)
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil)

		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	r := newRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil)

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, httperr.CodeInternalError)
	assert.NotContains(t, rec.Body.String(), "unexpected")
}

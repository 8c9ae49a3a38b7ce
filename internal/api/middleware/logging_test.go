package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {

	t.Run("Success - Propagates correlation id and logger", func(t *testing.T) {
		// Arrange
		var sawLogger bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawLogger = r.Context().Value(middleware.LoggerKey).(*slog.Logger)
			w.WriteHeader(http.StatusCreated)
		})
		req := httptest.NewRequest(http.MethodGet, "/api/cart/u1", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
		assert.True(t, sawLogger, "handler should see the request-scoped logger")
	})

	t.Run("Success - Generates a correlation id", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Failure - Panic becomes a 500", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "INTERNAL_ERROR")
	})
}

func TestLoggerFromContext_Default(t *testing.T) {
	assert.NotNil(t, middleware.LoggerFromContext(context.Background()))
}

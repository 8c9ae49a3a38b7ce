package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
)

// NewRequest builds a request carrying a discard logger, as the Logging
// middleware would, with the given path values set.
func NewRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// NewAuthenticatedRequest is NewRequest plus the claims Authenticate would store.
func NewAuthenticatedRequest(method, target string, body io.Reader, username string, pathParams map[string]string) *http.Request {
	req := NewRequest(method, target, body, pathParams)

	claims := &models.Claims{Username: username}
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

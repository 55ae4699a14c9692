package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	router := NewRouter(RouterConfig{Store: &fakeStore{}})

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		w := doRequest(router, "GET", "/health", "")

		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})

	t.Run("propagates the upstream id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set(HeaderRequestID, "upstream-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "upstream-123", w.Header().Get(HeaderRequestID))
	})

	t.Run("error responses carry the id", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/books/recommendations", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := NewRouter(RouterConfig{Store: &fakeStore{}})
	doRequest(router, "GET", "/api/books", "")

	w := doRequest(router, "GET", "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/books"`)
}

func TestUnknownRoute(t *testing.T) {
	router := NewRouter(RouterConfig{Store: &fakeStore{}})

	w := doRequest(router, "GET", "/api/authors", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"family-health-service/internal/app/config"
	"family-health-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{MaxRequests: 100, RequestBodyLimitInMegabyte: 1},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	var fromClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("client supplied id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.True(t, fromClient)
		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.False(t, fromClient)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	t.Run("within limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small"))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.NoError(t, readErr)
	})

	t.Run("over limit", func(t *testing.T) {
		body := strings.Repeat("x", (1<<20)+1)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.Error(t, readErr)
	})
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

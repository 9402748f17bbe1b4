package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Routes(t *testing.T) {
	srv, err := New(nil, Config{Address: ":8080", Version: "test"})
	require.NoError(t, err)
	h := srv.handler()

	t.Run("ping", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
		assert.Equal(t, "themer", rec.Header().Get("App-Name"))
	})

	t.Run("index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-theme="dark"`)
	})

	t.Run("static", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/css/theme.css", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `[data-theme="dark"]`)
	})

	t.Run("toggle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/web/theme", strings.NewReader("theme=dark"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "unisync-theme=light")
	})

	t.Run("unknown path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_BaseURL(t *testing.T) {
	srv, err := New(nil, Config{BaseURL: "/themer", Version: "test"})
	require.NoError(t, err)
	h := srv.handler()

	req := httptest.NewRequest(http.MethodGet, "/themer", http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/themer/", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/themer/", http.NoBody)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/themer/static/css/theme.css"`)
}

func TestServer_Defaults(t *testing.T) {
	s := &Server{}
	assert.Equal(t, int64(64*1024), s.bodySizeLimit())
	assert.Equal(t, int64(1000), s.requestsPerSec())
	assert.Equal(t, 5*time.Second, s.shutdownTimeout())

	s.cfg = Config{BodySizeLimit: 10, RequestsPerSec: 20, ShutdownTimeout: time.Second}
	assert.Equal(t, int64(10), s.bodySizeLimit())
	assert.Equal(t, int64(20), s.requestsPerSec())
	assert.Equal(t, time.Second, s.shutdownTimeout())
}

func TestServer_Run(t *testing.T) {
	srv, err := New(nil, Config{Address: "127.0.0.1:18571", ReadTimeout: time.Second, Version: "test"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://127.0.0.1:18571/ping")
		if getErr != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/testhelpers"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: config.Test,
		ServerHost:  "127.0.0.1",
		ServerPort:  "0",
		CORSOrigins: []string{"http://localhost:3000"},
		JWTSecret:   "test-secret",
	}
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(testConfig(), Deps{DB: testhelpers.NewSQLiteDB(t), Logger: zaptest.NewLogger(t)})
	require.NotNil(t, srv)
	assert.Equal(t, "127.0.0.1:0", srv.http.Addr)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServeAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.NewSQLiteDB(t)
	ignore := goleak.IgnoreCurrent()

	srv := New(testConfig(), Deps{DB: db, Logger: zaptest.NewLogger(t)})
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + l.Addr().String() + "/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	goleak.VerifyNone(t, ignore)
}

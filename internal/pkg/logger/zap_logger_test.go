package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/coffeeshop/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)
	return WrapZap(l), logs
}

func TestNewZapLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "coffeeshop.log")

	zl, err := NewZapLogger(ZapConfig{
		Service:  "coffeeshop-test",
		Level:    "debug",
		FilePath: path,
		MaxSize:  1,
	})
	require.NoError(t, err)

	zl.Info("hello from test", String("shop", "Blue Bottle"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"service":"coffeeshop-test"`)
}

func TestWithRequestContext(t *testing.T) {
	zl, logs := newObservedLogger()

	zl.WithRequestContext(requestcontext.WithRequestID(context.Background(), "req-9")).Info("tagged")
	zl.WithRequestContext(context.Background()).Info("untagged")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "req-9", logs.All()[0].ContextMap()["request_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "request_id")
}

func TestNewZapLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "chatty"})
	require.NoError(t, err)

	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
}

func TestLogHTTPRequest_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		level  zapcore.Level
		msg    string
	}{
		{name: "ok", status: http.StatusOK, level: zapcore.InfoLevel, msg: "Request processed"},
		{name: "not found", status: http.StatusNotFound, level: zapcore.WarnLevel, msg: "Client error"},
		{name: "upstream failure", status: http.StatusInternalServerError, err: errors.New("boom"), level: zapcore.ErrorLevel, msg: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()

			zl.LogHTTPRequest(http.MethodGet, "/read?id=10", "127.0.0.1", "req-1", tt.status, 5*time.Millisecond, tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.msg, entry.Message)
			assert.Equal(t, int64(tt.status), entry.ContextMap()["status"])
			assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
		})
	}
}

func TestZapEchoMiddleware_LogsHandledStatus(t *testing.T) {
	zl, logs := newObservedLogger()

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/boom?x=1", logs.All()[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusTeapot), logs.All()[0].ContextMap()["status"])
}

func TestGlobalLogger(t *testing.T) {
	zl, logs := newObservedLogger()
	SetGlobalLogger(zl)
	defer SetGlobalLogger(nil)

	Info("loaded shops", Int("count", 3))
	Warn("skipped line", Int("line", 7))

	assert.Same(t, zl, GetGlobalLogger())
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "loaded shops", logs.All()[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

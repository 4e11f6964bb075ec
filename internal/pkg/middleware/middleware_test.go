package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates id when missing", incoming: ""},
		{name: "keeps caller id", incoming: "caller-supplied-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/all", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen interface{}
			var fromCtx string
			handler := RequestIDMiddleware()(func(c echo.Context) error {
				seen = c.Get("request_id")
				fromCtx = requestcontext.GetRequestID(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(echo.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			assert.Equal(t, got, fromCtx)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			}
		})
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{name: "string panic", panicValue: "test panic message"},
		{name: "error panic", panicValue: errors.New("test error panic")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			zl := &logger.ZapLogger{Logger: zap.New(core)}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/read?id=10", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			assert.NotPanics(t, func() { _ = handler(c) })
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, "Panic recovered during request processing", logs.All()[0].Message)
			assert.Equal(t, "/read", logs.All()[0].ContextMap()["path"])
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryMiddleware(nil) })
}

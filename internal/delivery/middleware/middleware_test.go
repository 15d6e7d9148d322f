package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error {
		if deliverycontext.GetRequestIDFromContext(c.Request().Context()) != deliverycontext.GetRequestID(c) {
			return echo.NewHTTPError(http.StatusInternalServerError, "request id not propagated")
		}

		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "client value reused", incoming: "abc-123", keep: true},
		{name: "oversized value replaced", incoming: strings.Repeat("x", 200), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, false)

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusNoContent, rec.Code)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.keep, got == tt.incoming)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet for successful requests outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Empty(t, buf.String())
	})

	t.Run("logs server errors with request id", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, buf.String(), `"request_id":"req-9"`)
		assert.Contains(t, buf.String(), `"status":503`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("logs every request in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Contains(t, buf.String(), `"status":204`)
	})
}

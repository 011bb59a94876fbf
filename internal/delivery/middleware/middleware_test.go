package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reclaim/config"
	deliverycontext "reclaim/internal/delivery/context"
	domainerrors "reclaim/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessLog struct {
	Level       string `json:"level"`
	RequestID   string `json:"request_id"`
	Route       string `json:"route"`
	Status      int    `json:"status"`
	CollectorID string `json:"collector_id"`
}

// serve runs a request through request-id, logger and an auth stand-in, returning the access lines.
func serve(t *testing.T, debug bool, requestID string, collectorID uuid.UUID, h echo.HandlerFunc) (*httptest.ResponseRecorder, []accessLog) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/v1/pickups/:id", h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if collectorID != uuid.Nil {
				c.SetRequest(c.Request().WithContext(
					deliverycontext.WithCollector(c.Request().Context(), collectorID, nil)))
			}

			return next(c)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pickups/42", nil)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var lines []accessLog
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry accessLog
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}

	return rec, lines
}

func TestLoggerMiddleware_LogsCollectorAndRoute(t *testing.T) {
	collectorID := uuid.New()

	rec, lines := serve(t, true, "pickup-trace-1", collectorID, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, "pickup-trace-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0].Level)
	assert.Equal(t, "/api/v1/pickups/:id", lines[0].Route)
	assert.Equal(t, http.StatusNoContent, lines[0].Status)
	assert.Equal(t, "pickup-trace-1", lines[0].RequestID)
	assert.Equal(t, collectorID.String(), lines[0].CollectorID)
}

func TestLoggerMiddleware_QuietOutsideDebugExceptServerErrors(t *testing.T) {
	_, lines := serve(t, false, "", uuid.Nil, func(echo.Context) error {
		return domainerrors.ErrPickupNotFound
	})
	assert.Empty(t, lines)

	_, lines = serve(t, false, "", uuid.New(), func(echo.Context) error {
		return domainerrors.ErrTransactionFailed
	})
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0].Level)
	assert.Equal(t, http.StatusInternalServerError, lines[0].Status)
	assert.NotEmpty(t, lines[0].CollectorID)
}

func TestRequestIDMiddleware_ReplacesUnsafeIDs(t *testing.T) {
	for _, header := range []string{"", strings.Repeat("a", 129), "two words", "line\nbreak"} {
		rec, _ := serve(t, false, header, uuid.Nil, func(c echo.Context) error {
			assert.Equal(t, responseRequestID(c), deliverycontext.GetRequestIDFromContext(c.Request().Context()))

			return c.NoContent(http.StatusNoContent)
		})

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "header %q", header)
	}
}

func responseRequestID(c echo.Context) string {
	return c.Response().Header().Get(deliverycontext.HeaderXRequestID)
}

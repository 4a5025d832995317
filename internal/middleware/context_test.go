package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdnielss/socialmedia-api/internal/config"
	"github.com/jdnielss/socialmedia-api/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFromContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath("/messages")

	ce := NewContextEnhancer(&server.Server{
		Config: &config.Config{},
		Logger: &log,
	})

	handler := ce.EnhanceContext()(func(c echo.Context) error {
		// Code that only sees context.Context gets the same
		// request-scoped logger the handler layer does.
		ctxLogger := LoggerFromContext(c.Request().Context())
		require.Same(t, GetLogger(c), ctxLogger)

		ctxLogger.Info().Msg("from the store")
		return nil
	})
	require.NoError(t, handler(c))

	assert.Contains(t, buf.String(), "from the store")
	assert.Contains(t, buf.String(), `"path":"/messages"`)
}

func TestLoggerFromContextFallsBackToNop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	logger := LoggerFromContext(req.Context())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

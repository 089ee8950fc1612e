package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/internal/config"
)

func TestNew_TextHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "case", "two-sum")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "case=two-sum")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "DEBUG", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("decoded", "cases", 3)
	assert.Contains(t, buf.String(), `"msg":"decoded"`)
	assert.Contains(t, buf.String(), `"cases":3`)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", Format: "text"}, &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

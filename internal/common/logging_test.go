package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithOutput_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("warn", &buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Str("ticker", "AAPL").Msg("visible")
	assert.Contains(t, buf.String(), `"ticker":"AAPL"`)
	assert.Contains(t, buf.String(), `"message":"visible"`)
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.log")

	logger, err := Build(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debug("resolved rating facts", zap.Int("category", 1))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"resolved rating facts"`)
	assert.Contains(t, string(data), `"category":1`)
}

func TestBuildFallsBackToInfoOnBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.log")

	logger, err := Build(Config{Level: "chatty", Format: "json", Output: path})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestNamedAddsComponent(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotNil(t, Named("premium"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "premium-quote/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tariff:
  path: /etc/premium/2026.hcl
output:
  format: json
  language: nl
webhook:
  endpoint: https://hooks.example.test/lead
  timeout: 5s
  retry_count: 2
  headers:
    x-source: cli
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/premium/2026.hcl", cfg.Tariff.Path)
	assert.Equal(t, "EUR", cfg.Tariff.Currency)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "nl", cfg.Output.Language)
	assert.Equal(t, "https://hooks.example.test/lead", cfg.Webhook.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, 2, cfg.Webhook.RetryCount)
	assert.Equal(t, time.Second, cfg.Webhook.RetryDelay)
	assert.Equal(t, "cli", cfg.Webhook.Headers["x-source"])
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  format: cli\n")
	t.Setenv("PREMIUM_WEBHOOK_ENDPOINT", "https://env.example.test/hook")
	t.Setenv("PREMIUM_OUTPUT_FORMAT", "markdown")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.test/hook", cfg.Webhook.Endpoint)
	assert.Equal(t, "markdown", cfg.Output.Format)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: html\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeConfig))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestStringHidesSecret(t *testing.T) {
	cfg := Default()
	cfg.Webhook.Secret = "s3cr3t"

	assert.NotContains(t, cfg.String(), "s3cr3t")
	assert.Contains(t, cfg.String(), "secret=(set)")
}

func TestLoadRejectsUnknownWebhookProvider(t *testing.T) {
	path := writeConfig(t, "webhook:\n  provider: teams\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeConfig))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  sqlite_path: /tmp/lumen-test.db
catalog:
  currency: eur
`)
	t.Setenv("LUMEN_REDIS_HOST", "cache.internal")

	cfg, err := load("", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "EUR", cfg.Catalog.Currency)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, 10, cfg.Catalog.SubjectCacheTTLMinutes)
	assert.Same(t, cfg, Get())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := load("test", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "USD", cfg.Catalog.Currency)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, "database:\n  driver: oracle\n")
	_, err := load("", dir)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoad_ReleaseNeedsSecret(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := load("release", t.TempDir())
	assert.ErrorContains(t, err, "auth.jwt.secret")
}

func TestLoad_ReleaseNeedsPaymentSecret(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("LUMEN_AUTH_JWT_SECRET", "release-session-secret")
	_, err := load("release", t.TempDir())
	assert.ErrorContains(t, err, "payment.confirmation_secret")

	t.Setenv("LUMEN_PAYMENT_CONFIRMATION_SECRET", "release-payment-secret")
	cfg, err := load("release", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "release-payment-secret", cfg.Payment.ConfirmationSecret)
}

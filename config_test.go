package meridian

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("s-priv-key")
	assert.Equal(t, "s-priv-key", cfg.PrivateKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Locale)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MERIDIAN_PRIVATE_KEY", "s-priv-env")
	t.Setenv("MERIDIAN_BASE_URL", "https://sandbox.meridianpay.dev")
	t.Setenv("MERIDIAN_TIMEOUT", "5s")
	t.Setenv("MERIDIAN_LOCALE", "de-DE")

	cfg := ConfigFromEnv()
	assert.Equal(t, "s-priv-env", cfg.PrivateKey)
	assert.Equal(t, "https://sandbox.meridianpay.dev", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "de-DE", cfg.Locale)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("MERIDIAN_PRIVATE_KEY", "s-priv-env")
	t.Setenv("MERIDIAN_BASE_URL", "")
	t.Setenv("MERIDIAN_TIMEOUT", "not-a-duration")
	t.Setenv("MERIDIAN_LOCALE", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meridian.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"private_key: s-priv-file\n"+
			"base_url: https://sandbox.meridianpay.dev\n"+
			"timeout: 10s\n"+
			"locale: en-GB\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "s-priv-file", cfg.PrivateKey)
	assert.Equal(t, "https://sandbox.meridianpay.dev", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "en-GB", cfg.Locale)
}

func TestLoadConfigFileAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meridian.yaml")
	require.NoError(t, os.WriteFile(path, []byte("private_key: s-priv-file\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

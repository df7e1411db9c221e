package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":4000", cfg.EndpointAddrHTTP)
	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "https://accounts.google.com", cfg.OIDCIssuer)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.S3Bucket)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":9999", "-s", "flag-secret", "-t", "30", "-o", "client-id-1"}

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "client-id-1", cfg.OIDCAudience)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"endpoint_addr_http": ":5000",
		"secret_key": "json-secret",
		"token_validity_duration": "2h",
		"oidc_audience": "client-id-json",
		"s3_bucket": "docs"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	os.Args = []string{"server", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, ":5000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, "client-id-json", cfg.OIDCAudience)
	assert.Equal(t, "docs", cfg.S3Bucket)
	// untouched by the file
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr_http": ":5000"}`), 0o600))

	os.Args = []string{"server", "-c", path, "-a", ":6000"}

	cfg := LoadConfig()
	assert.Equal(t, ":6000", cfg.EndpointAddrHTTP)
}

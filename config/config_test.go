package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "")
	t.Setenv("CIPHER_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "")
	t.Setenv("CIPHER_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "cipher.toml")
	data := `
[server]
port = "9090"
allowed_origins = ["https://ciphers.example"]
max_text_length = 100

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://ciphers.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 100, cfg.Server.MaxTextLength)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CIPHER_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cipher.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.MaxTextLength = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_Origins(t *testing.T) {
	cfg := Default()
	cfg.Server.AllowedOrigins = []string{"*"}
	assert.NoError(t, cfg.Validate())

	cfg.Server.AllowedOrigins = []string{"localhost:3000"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())

	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg.Log.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("CIPHER_LOG_LEVEL", "verbose")

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorContains(t, err, "log.level")
}

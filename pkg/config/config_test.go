package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roadnet.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":5000", cfg.Server.ListenAddr)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
listen_addr = "127.0.0.1:6060"
allowed_origins = ["http://localhost:3000"]
shutdown_timeout = "3s"

[protocol]
color = "off"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6060", cfg.Server.ListenAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout.Duration)
	// tidak di set, tetap default
	assert.Equal(t, 300, cfg.Server.MaxAge)
	assert.Equal(t, ColorOff, cfg.Protocol.Color)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"bad color":   "[protocol]\ncolor = \"rainbow\"\n",
		"unknown key": "[server]\nport = 80\n",
		"empty addr":  "[server]\nlisten_addr = \" \"\n",
		"bad toml":    "[server\n",
		"bad timeout": "[server]\nshutdown_timeout = \"soon\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.UseColor(true))
	assert.False(t, cfg.UseColor(false))

	cfg.Protocol.Color = ColorOn
	assert.True(t, cfg.UseColor(false))

	cfg.Protocol.Color = ColorOff
	assert.False(t, cfg.UseColor(true))
}

// Package config loads roadnet settings from an optional TOML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Protocol ProtocolConfig `toml:"protocol"`
}

type ServerConfig struct {
	ListenAddr      string   `toml:"listen_addr"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	MaxAge          int      `toml:"max_age"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type ProtocolConfig struct {
	Color string `toml:"color"`
}

// Duration. time.Duration yang bisa di decode dari string toml ("5s", "1m").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:      ":5000",
			AllowedOrigins:  []string{"https://*", "http://*"},
			MaxAge:          300,
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Protocol: ProtocolConfig{
			Color: ColorAuto,
		},
	}
}

// Load. path kosong berarti pakai default. key yang tidak dikenal dianggap error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("server", "listen_addr") && strings.TrimSpace(cfg.Server.ListenAddr) == "" {
		return Config{}, fmt.Errorf("%s: [server].listen_addr is empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Protocol.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("[protocol].color must be auto, on or off, got %q", c.Protocol.Color)
	}
	if c.Server.MaxAge < 0 {
		return fmt.Errorf("[server].max_age must not be negative")
	}
	return nil
}

// UseColor. auto berarti warna hanya kalau output adalah terminal.
func (c Config) UseColor(isTerminal bool) bool {
	return c.Protocol.Color == ColorOn || (c.Protocol.Color == ColorAuto && isTerminal)
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// Default values for configuration.
const (
	DefaultWidth     = 1
	DefaultByteOrder = ByteOrderBig
	DefaultPad       = 0x00
	DefaultOutput    = "text"
	DefaultMaxSize   = 256 << 20
)

// Environment variable names.
const (
	EnvWidth     = "IHEX_WIDTH"
	EnvByteOrder = "IHEX_BYTE_ORDER"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		ByteOrder: DefaultByteOrder,
		MaxSize:   DefaultMaxSize,
		Pad:       DefaultPad,
		Output:    DefaultOutput,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
// An IHEX_WIDTH that is not a number is kept as an invalid width so that
// Validate reports it.
func (c *Config) ApplyEnvironmentOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvWidth)); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			w = -1
		}
		c.Width = w
	}
	if v := strings.TrimSpace(os.Getenv(EnvByteOrder)); v != "" {
		c.ByteOrder = strings.ToLower(v)
	}
}

package config

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a profile file. Environment overrides are
// applied after the file and before validation.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if !cfg.WordWidth().Valid() || cfg.Width != int(cfg.WordWidth()) {
		return fmt.Errorf("width: invalid value %d (must be 1, 2, 4 or 8)", cfg.Width)
	}

	if _, err := ParseByteOrder(cfg.ByteOrder); err != nil {
		return fmt.Errorf("byte_order: %w", err)
	}

	switch cfg.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}

	if cfg.MaxSize == 0 {
		return errors.New("max_size: must be greater than zero")
	}
	if cfg.Size > cfg.MaxSize {
		return fmt.Errorf("size: %d exceeds max_size %d", cfg.Size, cfg.MaxSize)
	}

	return nil
}

// ParseByteOrder maps "big" or "little" to the binary.ByteOrder.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch s {
	case ByteOrderBig:
		return binary.BigEndian, nil
	case ByteOrderLittle:
		return binary.LittleEndian, nil
	}
	return nil, fmt.Errorf("invalid byte order %q (must be big or little)", s)
}

// ParseNumber parses a decimal or 0x-prefixed hexadecimal number of at most
// bits bits, as used by address and size flags.
func ParseNumber(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

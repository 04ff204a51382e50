// Package config provides loading and validation of ihex image profiles.
package config

import (
	"encoding/binary"

	"github.com/marcinbor85/ihex"
)

// Config describes how an Intel HEX file is turned into a binary image.
type Config struct {
	// Width is the data word size in bytes (1, 2, 4 or 8).
	Width int `yaml:"width"`

	// ByteOrder is "big" or "little". Words are read big endian from the
	// file and written in this order.
	ByteOrder string `yaml:"byte_order"`

	// Origin is the absolute address stored at offset 0 of the image.
	Origin uint64 `yaml:"origin,omitempty"`

	// Size is the image size in bytes. Zero means up to the highest data
	// address.
	Size uint64 `yaml:"size,omitempty"`

	// MaxSize caps the image size to protect against sparse images
	// spanning gigabytes.
	MaxSize uint64 `yaml:"max_size,omitempty"`

	// Pad is the value of bytes not covered by any record.
	Pad uint8 `yaml:"pad"`

	// Output is the report format of the info command (text or json).
	Output string `yaml:"output"`
}

// ByteOrderBig and ByteOrderLittle are the accepted byte_order values.
const (
	ByteOrderBig    = "big"
	ByteOrderLittle = "little"
)

// WordWidth returns the configured width as an ihex.Width.
func (c *Config) WordWidth() ihex.Width {
	return ihex.Width(c.Width)
}

// Order returns the configured byte order, big endian if unset or invalid.
func (c *Config) Order() binary.ByteOrder {
	order, err := ParseByteOrder(c.ByteOrder)
	if err != nil {
		return binary.BigEndian
	}
	return order
}

package ihex

import (
	"encoding/hex"
)

// Decode8 decodes exactly two ASCII hex digits into a byte. Upper and lower
// case digits are accepted.
func Decode8(src []byte) (uint8, error) {
	if len(src) != 2 {
		return 0, hex.ErrLength
	}
	var dst [1]byte
	if _, err := hex.Decode(dst[:], src); err != nil {
		return 0, err
	}
	return dst[0], nil
}

// Decode16 decodes exactly four ASCII hex digits, most significant byte
// first.
func Decode16(src []byte) (uint16, error) {
	if len(src) != 4 {
		return 0, hex.ErrLength
	}
	hi, err := Decode8(src[:2])
	if err != nil {
		return 0, err
	}
	lo, err := Decode8(src[2:])
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

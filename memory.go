package ihex

import (
	"encoding/binary"
)

// Width is the size in bytes of the data words written by CopyInto.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// Valid reports whether w is one of the supported word widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// ZeroFill clears dst so that gaps between records read as zero.
func ZeroFill(dst []byte) {
	clear(dst)
}

// Fill sets every byte of dst to pad, e.g. 0xFF for erased flash.
func Fill(dst []byte, pad byte) {
	for i := range dst {
		dst[i] = pad
	}
}

// CopyInto writes the data records of rs into dst at their absolute
// addresses. The capacity of the destination is len(dst).
//
// Data is handled in words of width bytes stored most significant byte first
// in the file; each word is written in the given byte order, nil meaning
// big endian. A record whose length is not a multiple of width fails with
// ErrWrongRecordLength and a record that does not fit fails with
// ErrAddressOutOfRange before any of its bytes are written. Records copied
// before a failing one stay in dst.
func CopyInto(rs *RecordSet, dst []byte, width Width, order binary.ByteOrder) error {
	return CopyIntoAt(rs, dst, 0, width, order)
}

// CopyIntoAt is CopyInto with dst[0] mapped to absolute address origin.
// Data below origin is out of range.
func CopyIntoAt(rs *RecordSet, dst []byte, origin uint64, width Width, order binary.ByteOrder) error {
	if rs == nil {
		return &Error{Code: ErrNoInput, Message: "nil record set"}
	}
	if !width.Valid() {
		return newError(ErrWrongRecordLength, 0, "unsupported word width %d", width)
	}
	return rs.walk(func(adr uint64, r *Record) error {
		n := uint64(len(r.Data))
		if n%uint64(width) != 0 {
			return newError(ErrWrongRecordLength, r.Line,
				"%d data bytes at 0x%08X are not a multiple of the %d byte word width", n, adr, width)
		}
		if adr < origin || adr-origin+n > uint64(len(dst)) {
			return newError(ErrAddressOutOfRange, r.Line,
				"data at 0x%08X-0x%08X outside 0x%08X-0x%08X", adr, adr+n, origin, origin+uint64(len(dst)))
		}
		off := adr - origin
		return reorderInto(dst[off:off+n], r.Data, width, order)
	})
}

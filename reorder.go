package ihex

import (
	"encoding/binary"
)

// Reorder treats src as a sequence of big endian words of width bytes and
// returns them encoded in order. A length that is not a multiple of width
// is ErrWrongRecordLength.
func Reorder(src []byte, width Width, order binary.ByteOrder) ([]byte, error) {
	dst := make([]byte, len(src))
	if err := reorderInto(dst, src, width, order); err != nil {
		return nil, err
	}
	return dst, nil
}

// reorderInto requires len(dst) == len(src).
func reorderInto(dst, src []byte, width Width, order binary.ByteOrder) error {
	if !width.Valid() {
		return newError(ErrWrongRecordLength, 0, "unsupported word width %d", width)
	}
	w := int(width)
	if len(src)%w != 0 {
		return newError(ErrWrongRecordLength, 0, "%d bytes are not a multiple of the %d byte word width", len(src), w)
	}
	if order == nil {
		order = binary.BigEndian
	}
	for i := 0; i < len(src); i += w {
		in, out := src[i:i+w], dst[i:i+w]
		switch width {
		case Width8:
			out[0] = in[0]
		case Width16:
			order.PutUint16(out, binary.BigEndian.Uint16(in))
		case Width32:
			order.PutUint32(out, binary.BigEndian.Uint32(in))
		case Width64:
			order.PutUint64(out, binary.BigEndian.Uint64(in))
		}
	}
	return nil
}

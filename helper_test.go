package ihex

import (
	"fmt"
	"strings"
)

// hexLine encodes one record with a correct checksum.
func hexLine(t RecordType, adr uint16, data ...byte) string {
	r := Record{Length: uint8(len(data)), Type: t, Address: adr, Data: data}
	r.Checksum = r.ComputeChecksum()
	var sb strings.Builder
	sb.WriteByte(':')
	for _, b := range r.Bytes() {
		fmt.Fprintf(&sb, "%02X", b)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func seq(from byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = from + byte(i)
	}
	return b
}

const eofLine = ":00000001FF\n"

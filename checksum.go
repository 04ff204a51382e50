package ihex

// Sum returns the two's complement of the byte sum of b, i.e. the checksum
// that makes b plus the checksum add up to zero modulo 256.
func Sum(b []byte) uint8 {
	var sum uint8
	for _, v := range b {
		sum += v
	}
	return -sum
}

// Bytes returns the record as encoded on the line: length, address high and
// low, type, data and checksum.
func (r *Record) Bytes() []byte {
	b := make([]byte, 0, len(r.Data)+5)
	b = append(b, r.Length, byte(r.Address>>8), byte(r.Address), byte(r.Type))
	b = append(b, r.Data...)
	return append(b, r.Checksum)
}

// ComputeChecksum returns the checksum the record should carry given its
// other fields.
func (r *Record) ComputeChecksum() uint8 {
	b := r.Bytes()
	return Sum(b[:len(b)-1])
}

// Valid reports whether the record's bytes sum to zero modulo 256.
func (r *Record) Valid() bool {
	return Check(r)
}

// Check reports whether every byte of the record, checksum included, sums to
// zero modulo 256.
func Check(r *Record) bool {
	var sum uint8
	for _, v := range r.Bytes() {
		sum += v
	}
	return sum == 0
}

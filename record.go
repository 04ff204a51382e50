package ihex

import (
	"encoding/binary"
	"fmt"
)

// RecordType is the type field of an Intel HEX record.
type RecordType uint8

// Constants definitions of IntelHex record types
const (
	Data                   RecordType = 0x00 // Record with data bytes
	EndOfFile              RecordType = 0x01 // Record with end of file indicator
	ExtendedSegmentAddress RecordType = 0x02 // Record with extended segment address
	StartSegmentAddress    RecordType = 0x03 // Record with start segment address (CS:IP)
	ExtendedLinearAddress  RecordType = 0x04 // Record with extended linear address
	StartLinearAddress     RecordType = 0x05 // Record with start linear address
)

func (t RecordType) String() string {
	switch t {
	case Data:
		return "data"
	case EndOfFile:
		return "end of file"
	case ExtendedSegmentAddress:
		return "extended segment address"
	case StartSegmentAddress:
		return "start segment address"
	case ExtendedLinearAddress:
		return "extended linear address"
	case StartLinearAddress:
		return "start linear address"
	}
	return fmt.Sprintf("type 0x%02X", uint8(t))
}

func (t RecordType) known() bool {
	return t <= StartLinearAddress
}

// Record is one decoded line of Intel HEX input.
type Record struct {
	Length   uint8      // Declared number of data bytes
	Type     RecordType // Record type
	Address  uint16     // Address field as encoded on the line
	Data     []byte     // Owned copy of the data bytes
	Checksum uint8      // Checksum byte as encoded on the line
	Line     uint       // Input line number, 0 for records built in code
}

// Payload is the type-specific interpretation of a record's data field.
// The concrete type is one of the *Payload structs in this package.
type Payload interface {
	RecordType() RecordType
}

// DataPayload carries the bytes of a Data record and its 16-bit offset.
type DataPayload struct {
	Offset uint16
	Bytes  []byte
}

// EndOfFilePayload marks the end of the record set.
type EndOfFilePayload struct{}

// ExtendedSegmentAddressPayload sets bits 4-19 of the address of following
// data records.
type ExtendedSegmentAddressPayload struct {
	Segment uint16
}

// StartSegmentAddressPayload is the CS:IP execution start address.
type StartSegmentAddressPayload struct {
	CS uint16
	IP uint16
}

// ExtendedLinearAddressPayload sets the upper 16 bits of the address of
// following data records.
type ExtendedLinearAddressPayload struct {
	Upper uint16
}

// StartLinearAddressPayload is the 32-bit EIP execution start address.
type StartLinearAddressPayload struct {
	EIP uint32
}

func (DataPayload) RecordType() RecordType                   { return Data }
func (EndOfFilePayload) RecordType() RecordType              { return EndOfFile }
func (ExtendedSegmentAddressPayload) RecordType() RecordType { return ExtendedSegmentAddress }
func (StartSegmentAddressPayload) RecordType() RecordType    { return StartSegmentAddress }
func (ExtendedLinearAddressPayload) RecordType() RecordType  { return ExtendedLinearAddress }
func (StartLinearAddressPayload) RecordType() RecordType     { return StartLinearAddress }

// Base returns the address offset applied to following data records.
func (p ExtendedSegmentAddressPayload) Base() uint32 {
	return uint32(p.Segment) << 4
}

// Base returns the address offset applied to following data records.
func (p ExtendedLinearAddressPayload) Base() uint32 {
	return uint32(p.Upper) << 16
}

// Linear returns the 20-bit linear form of CS:IP.
func (p StartSegmentAddressPayload) Linear() uint32 {
	return uint32(p.CS)<<4 + uint32(p.IP)
}

// Payload decodes the data field according to the record type. Address
// extension and start address records must carry exactly 2 or 4 bytes and
// the end of file record none; anything else is ErrWrongRecordLength.
func (r *Record) Payload() (Payload, error) {
	switch r.Type {
	case Data:
		return DataPayload{Offset: r.Address, Bytes: r.Data}, nil
	case EndOfFile:
		if err := r.expectSize(0); err != nil {
			return nil, err
		}
		return EndOfFilePayload{}, nil
	case ExtendedSegmentAddress:
		if err := r.expectSize(2); err != nil {
			return nil, err
		}
		return ExtendedSegmentAddressPayload{Segment: binary.BigEndian.Uint16(r.Data)}, nil
	case StartSegmentAddress:
		if err := r.expectSize(4); err != nil {
			return nil, err
		}
		return StartSegmentAddressPayload{
			CS: binary.BigEndian.Uint16(r.Data[0:2]),
			IP: binary.BigEndian.Uint16(r.Data[2:4]),
		}, nil
	case ExtendedLinearAddress:
		if err := r.expectSize(2); err != nil {
			return nil, err
		}
		return ExtendedLinearAddressPayload{Upper: binary.BigEndian.Uint16(r.Data)}, nil
	case StartLinearAddress:
		if err := r.expectSize(4); err != nil {
			return nil, err
		}
		return StartLinearAddressPayload{EIP: binary.BigEndian.Uint32(r.Data)}, nil
	}
	return nil, newError(ErrUnknownRecordType, r.Line, "0x%02X", uint8(r.Type))
}

func (r *Record) expectSize(n int) error {
	if len(r.Data) != n {
		return newError(ErrWrongRecordLength, r.Line,
			"%s record carries %d data bytes, expected %d", r.Type, len(r.Data), n)
	}
	return nil
}

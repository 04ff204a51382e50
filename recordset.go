package ihex

import (
	"fmt"
	"sort"
)

// RecordSet is an ordered list of records in file order. A set returned by
// Parse always ends with an end of file record and is not modified by any
// function of this package.
type RecordSet struct {
	Records []Record
}

// Structure with binary data segment fields
type Segment struct {
	Address uint32 // Starting address of data segment
	Data    []byte // Data segment bytes
}

// Helper type for data segments sorting operations
type sortByAddress []Segment

func (segs sortByAddress) Len() int           { return len(segs) }
func (segs sortByAddress) Swap(i, j int)      { segs[i], segs[j] = segs[j], segs[i] }
func (segs sortByAddress) Less(i, j int) bool { return segs[i].Address < segs[j].Address }

// Len returns the number of records, end of file record included.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// TotalSize returns the number of data bytes carried by Data records. Gaps
// between records are not counted.
func (rs *RecordSet) TotalSize() uint64 {
	var n uint64
	for i := range rs.Records {
		if rs.Records[i].Type == Data {
			n += uint64(rs.Records[i].Length)
		}
	}
	return n
}

// StartAddress returns the execution start address from the last start
// segment or start linear address record. A segment address is returned in
// its linear form.
func (rs *RecordSet) StartAddress() (adr uint32, ok bool) {
	for i := range rs.Records {
		p, err := rs.Records[i].Payload()
		if err != nil {
			continue
		}
		switch p := p.(type) {
		case StartSegmentAddressPayload:
			adr, ok = p.Linear(), true
		case StartLinearAddressPayload:
			adr, ok = p.EIP, true
		}
	}
	return adr, ok
}

// walk calls fn for every Data record with its absolute address, applying
// extended segment and extended linear address records in file order.
func (rs *RecordSet) walk(fn func(adr uint64, r *Record) error) error {
	var base uint64
	for i := range rs.Records {
		r := &rs.Records[i]
		p, err := r.Payload()
		if err != nil {
			return err
		}
		switch p := p.(type) {
		case ExtendedSegmentAddressPayload:
			base = uint64(p.Base())
		case ExtendedLinearAddressPayload:
			base = uint64(p.Base())
		case DataPayload:
			if err := fn(base+uint64(p.Offset), r); err != nil {
				return err
			}
		}
	}
	return nil
}

// Extent returns one past the highest absolute address holding data, which
// is the smallest destination length CopyInto accepts.
func (rs *RecordSet) Extent() uint64 {
	var end uint64
	_ = rs.walk(func(adr uint64, r *Record) error {
		if e := adr + uint64(len(r.Data)); e > end {
			end = e
		}
		return nil
	})
	return end
}

// Segments returns the data of all Data records at their absolute addresses,
// sorted by address, with contiguous records merged into one segment.
// Records that overlap produce an error wrapping ErrOverlap.
func (rs *RecordSet) Segments() ([]Segment, error) {
	var spans []Segment
	err := rs.walk(func(adr uint64, r *Record) error {
		if len(r.Data) == 0 {
			return nil
		}
		if adr > 0xFFFFFFFF {
			return newError(ErrAddressOutOfRange, r.Line, "absolute address 0x%X exceeds 32 bits", adr)
		}
		spans = append(spans, Segment{Address: uint32(adr), Data: r.Data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Stable(sortByAddress(spans))

	var segs []Segment
	var end uint64
	for _, s := range spans {
		if len(segs) > 0 {
			last := &segs[len(segs)-1]
			if uint64(s.Address) < end {
				return nil, fmt.Errorf("%w: 0x%08X lies inside segment 0x%08X-0x%08X",
					ErrOverlap, s.Address, last.Address, end-1)
			}
			if uint64(s.Address) == end {
				last.Data = append(last.Data, s.Data...)
				end += uint64(len(s.Data))
				continue
			}
		}
		segs = append(segs, Segment{Address: s.Address, Data: append([]byte(nil), s.Data...)})
		end = uint64(s.Address) + uint64(len(s.Data))
	}
	return segs, nil
}

package ihex

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// parser holds the state of a single Parse call.
type parser struct {
	rs      *RecordSet
	lineNum uint
	eofFlag bool
}

// lineDecoder walks the hex digits of one line, after the colon.
type lineDecoder struct {
	buf  []byte
	pos  int
	line uint
}

func (d *lineDecoder) next8(field string) (uint8, error) {
	if len(d.buf)-d.pos < 2 {
		return 0, newError(ErrPrematureEOF, d.line, "line ends before %s field at column %d", field, d.column())
	}
	v, err := Decode8(d.buf[d.pos : d.pos+2])
	if err != nil {
		return 0, newError(ErrParse, d.line, "%s field at column %d: %v", field, d.column(), err)
	}
	d.pos += 2
	return v, nil
}

func (d *lineDecoder) next16(field string) (uint16, error) {
	if len(d.buf)-d.pos < 4 {
		return 0, newError(ErrPrematureEOF, d.line, "line ends before %s field at column %d", field, d.column())
	}
	v, err := Decode16(d.buf[d.pos : d.pos+4])
	if err != nil {
		return 0, newError(ErrParse, d.line, "%s field at column %d: %v", field, d.column(), err)
	}
	d.pos += 4
	return v, nil
}

// column is 1-based and counts the leading colon.
func (d *lineDecoder) column() int {
	return d.pos + 2
}

func (d *lineDecoder) remaining() int {
	return len(d.buf) - d.pos
}

func (p *parser) parseIntelHexLine(line []byte) (Record, error) {
	if line[0] != ':' {
		return Record{}, newError(ErrParse, p.lineNum, "no colon char on the first line character")
	}
	d := &lineDecoder{buf: line[1:], line: p.lineNum}

	var rec Record
	var err error
	rec.Line = p.lineNum
	if rec.Length, err = d.next8("length"); err != nil {
		return Record{}, err
	}
	if rec.Address, err = d.next16("address"); err != nil {
		return Record{}, err
	}
	t, err := d.next8("type")
	if err != nil {
		return Record{}, err
	}
	rec.Type = RecordType(t)
	if !rec.Type.known() {
		return Record{}, newError(ErrUnknownRecordType, p.lineNum, "0x%02X", t)
	}

	rec.Data = make([]byte, rec.Length)
	for i := range rec.Data {
		if rec.Data[i], err = d.next8("data"); err != nil {
			return Record{}, err
		}
	}
	if rec.Checksum, err = d.next8("checksum"); err != nil {
		return Record{}, err
	}
	if n := d.remaining(); n != 0 {
		return Record{}, newError(ErrWrongRecordLength, p.lineNum,
			"%d characters after checksum, length field declares %d data bytes", n, rec.Length)
	}
	return rec, nil
}

func (p *parser) parseIntelHexRecord(rec Record) error {
	if !Check(&rec) {
		return newError(ErrIncorrectChecksum, p.lineNum,
			"record %d at address 0x%04X (sum = %02X != %02X)",
			len(p.rs.Records), rec.Address, rec.ComputeChecksum(), rec.Checksum)
	}
	if _, err := rec.Payload(); err != nil {
		return err
	}
	p.rs.Records = append(p.rs.Records, rec)
	if rec.Type == EndOfFile {
		p.eofFlag = true
	}
	return nil
}

// Parse decodes a complete Intel HEX image. Records are returned in file
// order, ending with the first end of file record; anything after it is
// ignored. Blank lines are skipped and CRLF line endings are accepted.
//
// Any malformed line, checksum mismatch or missing end of file record fails
// the whole parse. The returned error is an *Error.
func Parse(data []byte) (*RecordSet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &Error{Code: ErrNoInput}
	}
	p := &parser{rs: &RecordSet{}}
	for len(data) > 0 && !p.eofFlag {
		var line []byte
		line, data, _ = bytes.Cut(data, []byte{'\n'})
		p.lineNum++
		line = bytes.TrimRight(line, " \t\r")
		if len(line) == 0 {
			continue
		}
		rec, err := p.parseIntelHexLine(line)
		if err != nil {
			return nil, err
		}
		if err := p.parseIntelHexRecord(rec); err != nil {
			return nil, err
		}
	}
	if !p.eofFlag {
		return nil, newError(ErrNoEOF, p.lineNum, "no end of file line")
	}
	return p.rs, nil
}

// ParseReader reads r to the end and parses the result with Parse.
func ParseReader(r io.Reader) (*RecordSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(data)
}

// ParseFile reads and parses the Intel HEX file at path.
func ParseFile(path string) (*RecordSet, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied path
	if err != nil {
		return nil, fmt.Errorf("reading hex file: %w", err)
	}
	return Parse(data)
}

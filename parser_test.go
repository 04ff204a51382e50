package ihex

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func assertParseError(t *testing.T, input string, code ErrorCode, msg string) {
	t.Helper()
	rs, err := Parse([]byte(input))
	if err == nil {
		t.Errorf("%s: no error for %q", msg, input)
		return
	}
	if rs != nil {
		t.Errorf("%s: partial record set returned for %q", msg, input)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Errorf("%s: error %v is not *Error", msg, err)
		return
	}
	if perr.Code != code {
		t.Errorf("%s: got %v, want code %v", msg, err, code)
	}
	if !errors.Is(err, code) {
		t.Errorf("%s: errors.Is(%v, %v) = false", msg, err, code)
	}
}

func TestNoInput(t *testing.T) {
	assertParseError(t, "", ErrNoInput, "empty input")
	assertParseError(t, "\n\r\n  \n", ErrNoInput, "blank input")
	if _, err := Parse(nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("Parse(nil) = %v, want ErrNoInput", err)
	}
}

func TestSyntaxError(t *testing.T) {
	assertParseError(t, "00000001FF\n", ErrParse, "no colon error")
	assertParseError(t, ":qw00000001FF\n", ErrParse, "no ascii hex error")
	assertParseError(t, ":0000zz01FF\n", ErrParse, "bad address digit error")
	assertParseError(t, ":0400000001G20304E2\n", ErrParse, "bad data digit error")
	assertParseError(t, ":00000001F\n", ErrPrematureEOF, "odd length checksum error")
}

func TestUnknownRecordType(t *testing.T) {
	assertParseError(t, ":000000FF01\n", ErrUnknownRecordType, "type 0xFF")
	assertParseError(t, ":0000001FF\n", ErrUnknownRecordType, "type 0x1F")
	assertParseError(t, hexLine(0x06, 0)+eofLine, ErrUnknownRecordType, "type 0x06")
}

func TestPrematureEndOfInput(t *testing.T) {
	assertParseError(t, ":10000000\n", ErrPrematureEOF, "no data bytes")
	assertParseError(t, ":1000000001020304\n", ErrPrematureEOF, "4 of 16 data bytes")
	assertParseError(t, ":1000000001020304050607080910111213141516", ErrPrematureEOF, "no checksum at end of input")
	assertParseError(t, ":02000000FE\n", ErrPrematureEOF, "checksum taken as data")
	assertParseError(t, ":0000\n", ErrPrematureEOF, "truncated address")
	assertParseError(t, ":\n", ErrPrematureEOF, "colon only")
}

func TestChecksumError(t *testing.T) {
	assertParseError(t, ":00000101FF\n", ErrIncorrectChecksum, "no checking checksum error")
	assertParseError(t, ":00000001FE\n", ErrIncorrectChecksum, "no checking checksum error")
	assertParseError(t, ":0000000001\n", ErrIncorrectChecksum, "no checking checksum error")
	assertParseError(t, ":0400100001020304E3\n"+eofLine, ErrIncorrectChecksum, "data record checksum")

	_, err := Parse([]byte(hexLine(Data, 0, 1, 2) + ":0400100001020304E3\n" + eofLine))
	if err == nil {
		t.Fatal("expected checksum error")
	}
	for _, want := range []string{"record 1", "0x0010", "line 2", "E2 != E3"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
}

func TestRecordLengthError(t *testing.T) {
	assertParseError(t, ":0100000100FE\n", ErrWrongRecordLength, "eof with data")
	assertParseError(t, ":03000004010100F7\n", ErrWrongRecordLength, "extended linear address length")
	assertParseError(t, ":050000050101010100F2\n", ErrWrongRecordLength, "start linear address length")
	assertParseError(t, hexLine(ExtendedSegmentAddress, 0, 0x10)+eofLine, ErrWrongRecordLength, "extended segment address length")
	assertParseError(t, hexLine(StartSegmentAddress, 0, 1, 2)+eofLine, ErrWrongRecordLength, "start segment address length")
	assertParseError(t, ":0400100001020304E200\n"+eofLine, ErrWrongRecordLength, "trailing characters")
}

func TestMissingEndOfFile(t *testing.T) {
	assertParseError(t, ":0400000501000000F6\n", ErrNoEOF, "no end of file line error")
	assertParseError(t, hexLine(Data, 0, 1, 2, 3)+hexLine(Data, 3, 4), ErrNoEOF, "data only")
	assertParseError(t, "\n\n"+hexLine(ExtendedLinearAddress, 0, 0, 1), ErrNoEOF, "extended address only")
}

func TestParse(t *testing.T) {
	input := ":020000040001F9\r\n" +
		"\r\n" +
		":0400100001020304E2\r\n" +
		":0400000501000000F6\r\n" +
		":00000001FF\r\n" +
		"garbage after end of file\r\n"

	rs, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", rs.Len())
	}

	want := []Record{
		{Length: 2, Type: ExtendedLinearAddress, Address: 0, Data: []byte{0x00, 0x01}, Checksum: 0xF9, Line: 1},
		{Length: 4, Type: Data, Address: 0x0010, Data: []byte{1, 2, 3, 4}, Checksum: 0xE2, Line: 3},
		{Length: 4, Type: StartLinearAddress, Address: 0, Data: []byte{1, 0, 0, 0}, Checksum: 0xF6, Line: 4},
		{Length: 0, Type: EndOfFile, Address: 0, Data: []byte{}, Checksum: 0xFF, Line: 5},
	}
	for i, r := range rs.Records {
		w := want[i]
		if r.Length != w.Length || r.Type != w.Type || r.Address != w.Address ||
			r.Checksum != w.Checksum || r.Line != w.Line || !bytes.Equal(r.Data, w.Data) {
			t.Errorf("record %d = %+v, want %+v", i, r, w)
		}
		if !r.Valid() {
			t.Errorf("record %d not valid", i)
		}
	}
	if last := rs.Records[rs.Len()-1]; last.Type != EndOfFile {
		t.Errorf("last record type = %v", last.Type)
	}
}

func TestParseLowerCase(t *testing.T) {
	rs, err := Parse([]byte(":10010000214601360121470136007efe09d2190140\n:00000001ff"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Records[0].Address != 0x0100 || rs.Records[0].Data[14] != 0x19 {
		t.Errorf("unexpected record %+v", rs.Records[0])
	}
}

func TestParseOwnsData(t *testing.T) {
	input := []byte(hexLine(Data, 0, 0xAA, 0xBB) + eofLine)
	rs, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range input {
		input[i] = 0
	}
	if !bytes.Equal(rs.Records[0].Data, []byte{0xAA, 0xBB}) {
		t.Errorf("record data changed with input: %X", rs.Records[0].Data)
	}
}

func TestParseReader(t *testing.T) {
	rs, err := ParseReader(strings.NewReader(hexLine(Data, 0, 1) + eofLine))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rs.Len())
	}
	if _, err := ParseReader(strings.NewReader("")); !errors.Is(err, ErrNoInput) {
		t.Errorf("empty reader: got %v, want ErrNoInput", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.hex")
	if err := os.WriteFile(path, []byte(hexLine(Data, 0x100, 1, 2, 3)+eofLine), 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	rs, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.TotalSize() != 3 {
		t.Errorf("TotalSize() = %d, want 3", rs.TotalSize())
	}

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.hex"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
	var perr *Error
	if errors.As(err, &perr) {
		t.Errorf("missing file reported as parse error %v", perr)
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Code: ErrIncorrectChecksum, Message: "record 3", Line: 7}
	if got, want := err.Error(), "incorrect checksum: record 3 at line 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := (&Error{Code: ErrNoInput}).Error(), "no input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := ErrorCode(0x42).Error(); got != "error 0x42" {
		t.Errorf("unknown code string = %q", got)
	}
}

func BenchmarkParse(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < 1024; i++ {
		buf.WriteString(hexLine(Data, uint16(i*16), seq(byte(i), 16)...))
	}
	buf.WriteString(eofLine)
	data := buf.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(data)
	}
}

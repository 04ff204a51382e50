package ihex

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a parse or materialization failure. The values are
// stable and double as process exit codes for cmd/ihex.
type ErrorCode uint

const (
	ErrIncorrectChecksum ErrorCode = 0x01
	ErrNoEOF             ErrorCode = 0x02
	ErrParse             ErrorCode = 0x03
	ErrWrongRecordLength ErrorCode = 0x04
	ErrNoInput           ErrorCode = 0x05
	ErrUnknownRecordType ErrorCode = 0x06
	ErrPrematureEOF      ErrorCode = 0x07
	ErrAddressOutOfRange ErrorCode = 0x08
)

func (c ErrorCode) Error() string {
	switch c {
	case ErrIncorrectChecksum:
		return "incorrect checksum"
	case ErrNoEOF:
		return "missing end of file record"
	case ErrParse:
		return "syntax error"
	case ErrWrongRecordLength:
		return "wrong record length"
	case ErrNoInput:
		return "no input"
	case ErrUnknownRecordType:
		return "unknown record type"
	case ErrPrematureEOF:
		return "premature end of input"
	case ErrAddressOutOfRange:
		return "address out of range"
	}
	return fmt.Sprintf("error 0x%02X", uint(c))
}

// Error is the concrete error returned by Parse and CopyInto. It unwraps to
// its Code, so callers test for a kind with errors.Is(err, ihex.ErrNoEOF).
type Error struct {
	Code    ErrorCode
	Message string
	Line    uint // 1-based input line, 0 if unknown
}

func (e *Error) Error() string {
	str := e.Code.Error()
	if e.Message != "" {
		str += ": " + e.Message
	}
	if e.Line != 0 {
		str += fmt.Sprintf(" at line %d", e.Line)
	}
	return str
}

func (e *Error) Unwrap() error {
	return e.Code
}

func newError(code ErrorCode, line uint, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Line: line}
}

// ErrOverlap is reported by RecordSet.Segments when two data records cover
// the same absolute address.
var ErrOverlap = errors.New("data segments overlap")

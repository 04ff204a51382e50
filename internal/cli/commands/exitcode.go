package commands

import (
	"errors"

	"github.com/marcinbor85/ihex"
)

// ExitCodeOther is returned for errors that carry no ihex.ErrorCode, such as
// unreadable files, invalid profiles and bad flags.
const ExitCodeOther = 9

// ExitCodeFor maps an error to the process exit code. Parse and
// materialization failures exit with their ihex.ErrorCode value.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var code ihex.ErrorCode
	if errors.As(err, &code) && code > 0 && code < ExitCodeOther {
		return int(code)
	}
	return ExitCodeOther
}

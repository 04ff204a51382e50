// ihex - Intel HEX inspection and conversion tool
//
// ihex parses Intel HEX files, reports their layout and converts them to
// flat binary images.
package main

import (
	"os"

	"github.com/marcinbor85/ihex/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

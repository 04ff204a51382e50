package main

import (
	"fmt"
	"os"

	"github.com/marcinbor85/ihex"
)

func main() {
	path := "example.hex"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	rs, err := ihex.ParseFile(path)
	if err != nil {
		panic(err)
	}

	segs, err := rs.Segments()
	if err != nil {
		panic(err)
	}
	for _, segment := range segs {
		fmt.Printf("0x%08X: %d bytes\n", segment.Address, len(segment.Data))
	}
	if adr, ok := rs.StartAddress(); ok {
		fmt.Printf("start: 0x%08X\n", adr)
	}
	if len(segs) == 0 {
		return
	}

	// erased flash image from the first data byte up to the last one
	origin := uint64(segs[0].Address)
	mem := make([]byte, rs.Extent()-origin)
	ihex.Fill(mem, 0xFF)
	if err := ihex.CopyIntoAt(rs, mem, origin, ihex.Width8, nil); err != nil {
		panic(err)
	}
	fmt.Printf("% X\n", mem)
}

// Package ihex parses Intel HEX images and writes their contents into flat
// memory buffers.
//
// Parse turns the text of a complete image into a RecordSet, verifying the
// syntax and checksum of every line. CopyInto then places the data records
// at their absolute addresses, honoring extended segment and extended
// linear address records, with optional word width and byte order
// conversion:
//
//	rs, err := ihex.ParseFile("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf := make([]byte, rs.Extent())
//	ihex.Fill(buf, 0xFF)
//	if err := ihex.CopyInto(rs, buf, ihex.Width16, binary.LittleEndian); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors are *Error values carrying an ErrorCode; use errors.Is with one of
// the Err* codes to test for a kind of failure.
package ihex

// Package output provides formatting of Intel HEX image summaries.
package output

import (
	"errors"

	"github.com/marcinbor85/ihex"
)

// Report summarizes a parsed Intel HEX file.
type Report struct {
	// File is the path of the parsed file.
	File string `json:"file"`

	// Records is the number of records, end of file record included.
	Records int `json:"records"`

	// DataRecords is the number of Data records.
	DataRecords int `json:"data_records"`

	// DataBytes is the payload byte count of all Data records.
	DataBytes uint64 `json:"data_bytes"`

	// Extent is one past the highest absolute data address.
	Extent uint64 `json:"extent"`

	// StartAddress is the execution start address, if the file has one.
	StartAddress *uint32 `json:"start_address,omitempty"`

	// Segments lists contiguous data ranges in address order.
	Segments []SegmentInfo `json:"segments"`

	// RecordList holds every record when the report is verbose.
	RecordList []RecordInfo `json:"record_list,omitempty"`

	// Warnings are non-fatal findings such as overlapping records.
	Warnings []string `json:"warnings,omitempty"`
}

// SegmentInfo is a contiguous range of data.
type SegmentInfo struct {
	Address uint32 `json:"address"`
	Size    int    `json:"size"`
}

// RecordInfo describes one record.
type RecordInfo struct {
	Line     uint   `json:"line"`
	Type     string `json:"type"`
	Address  uint16 `json:"address"`
	Length   uint8  `json:"length"`
	Checksum uint8  `json:"checksum"`
}

// NewReport builds a Report from a parsed record set. Records are listed only
// when verbose is set.
func NewReport(file string, rs *ihex.RecordSet, verbose bool) *Report {
	report := &Report{
		File:      file,
		Records:   rs.Len(),
		DataBytes: rs.TotalSize(),
		Extent:    rs.Extent(),
		Segments:  []SegmentInfo{},
	}

	for _, r := range rs.Records {
		if r.Type == ihex.Data {
			report.DataRecords++
		}
		if verbose {
			report.RecordList = append(report.RecordList, RecordInfo{
				Line:     r.Line,
				Type:     r.Type.String(),
				Address:  r.Address,
				Length:   r.Length,
				Checksum: r.Checksum,
			})
		}
	}

	if adr, ok := rs.StartAddress(); ok {
		report.StartAddress = &adr
	}

	segs, err := rs.Segments()
	switch {
	case errors.Is(err, ihex.ErrOverlap):
		report.Warnings = append(report.Warnings, err.Error())
	case err != nil:
		report.Warnings = append(report.Warnings, "segments: "+err.Error())
	}
	for _, s := range segs {
		report.Segments = append(report.Segments, SegmentInfo{Address: s.Address, Size: len(s.Data)})
	}

	return report
}

// HasWarnings returns true if the report carries any warning.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Package export renders comparison reports to downstream formats.
//
// Two sinks are provided: a multi-sheet Excel workbook mirroring the
// structure analysts expect (summary, consolidated modification and
// presence sheets, per-sheet detail tabs) and an indented JSON document
// for machine consumption.
package export

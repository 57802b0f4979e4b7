// Package comparison is the driver layer around the comparison core.
//
// The Service loads sheets from two workbook sources, determines the common
// and skipped sheets, runs the identifier-keyed reconciliation per sheet with
// per-sheet failure isolation, and rolls the results up into a report. An
// optional Recorder persists finished runs to the history database.
//
// The Handler exposes the service over HTTP: POST /comparison accepts two
// multipart workbook uploads plus optional identifier and strictness
// overrides, and returns the JSON report.
//
// Rendering reports into files lives in the export subpackage.
package comparison

// Package workbook provides data sources that feed the comparison core.
//
// A Source yields per-sheet datasets (column list + ordered records) from a
// workbook. Two implementations exist:
//
//   - ExcelSource: reads .xlsx files via excelize, from disk or any stream
//     (HTTP upload, in-memory buffer).
//   - ObjectSource: fetches a workbook object from the configured S3/MinIO
//     bucket and delegates to ExcelSource.
//
// # Value semantics
//
// Cells are read in their formatted string form, matching the comparison
// core's canonical-string equality. Empty cells and cells missing from short
// rows become nil (null). The column list comes from the header row; rows
// with no values at all are dropped.
package workbook

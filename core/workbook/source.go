package workbook

import (
	"context"

	"github.com/abhayror17/Excel-Comparator/core/compare"
)

// Source yields, per named sheet, the ordered records and the column list of
// one workbook. Implementations exist for local .xlsx files, in-memory
// buffers, and objects fetched from the storage bucket.
type Source interface {
	// Name returns a human-readable name for the workbook (usually the file
	// name), used in reports and logs.
	Name() string

	// SheetNames lists the sheets of the workbook.
	SheetNames(ctx context.Context) ([]string, error)

	// Sheet materializes one sheet as a dataset: the header row becomes the
	// column list and every following row becomes a record.
	Sheet(ctx context.Context, name string) (compare.Dataset, error)
}

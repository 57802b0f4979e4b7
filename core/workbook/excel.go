package workbook

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/abhayror17/Excel-Comparator/core/compare"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads a workbook through excelize. Cell values arrive in their
// formatted string form (what the spreadsheet displays); empty cells and
// cells past the end of a short row become nil, which the comparison core
// treats as null.
type ExcelSource struct {
	name string
	file *excelize.File
}

// OpenFile opens a workbook from the local filesystem.
func OpenFile(path string) (*ExcelSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &ExcelSource{name: filepath.Base(path), file: f}, nil
}

// OpenReader opens a workbook from a stream, e.g. an HTTP upload or a storage
// object. The name is carried into reports.
func OpenReader(r io.Reader, name string) (*ExcelSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", name, err)
	}
	return &ExcelSource{name: name, file: f}, nil
}

// Name returns the workbook's display name.
func (s *ExcelSource) Name() string {
	return s.name
}

// SheetNames lists the sheets in workbook order.
func (s *ExcelSource) SheetNames(ctx context.Context) ([]string, error) {
	return s.file.GetSheetList(), nil
}

// Sheet reads one sheet into a dataset. The first row is the header; empty
// header cells are skipped. Rows with no values at all are dropped so
// trailing blank rows don't register as records.
func (s *ExcelSource) Sheet(ctx context.Context, name string) (compare.Dataset, error) {
	rows, err := s.file.GetRows(name)
	if err != nil {
		return compare.Dataset{}, fmt.Errorf("failed to read sheet %q of %s: %w", name, s.name, err)
	}
	if len(rows) == 0 {
		return compare.Dataset{Columns: []string{}, Records: []compare.Record{}}, nil
	}

	// Header row: column index -> name, skipping unnamed cells.
	type column struct {
		idx  int
		name string
	}
	columns := make([]column, 0, len(rows[0]))
	names := make([]string, 0, len(rows[0]))
	for idx, header := range rows[0] {
		if header == "" {
			continue
		}
		columns = append(columns, column{idx: idx, name: header})
		names = append(names, header)
	}

	records := make([]compare.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(compare.Record, len(columns))
		empty := true
		for _, col := range columns {
			// GetRows truncates trailing empty cells, so short rows pad to null.
			if col.idx < len(row) && row[col.idx] != "" {
				rec[col.name] = row[col.idx]
				empty = false
			} else {
				rec[col.name] = nil
			}
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}

	return compare.Dataset{Columns: names, Records: records}, nil
}

// Close releases the underlying workbook.
func (s *ExcelSource) Close() error {
	return s.file.Close()
}

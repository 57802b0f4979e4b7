package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhayror17/Excel-Comparator/core/compare"

	"github.com/xuri/excelize/v2"
)

// Excel limits sheet names to 31 characters.
const maxSheetNameLen = 31

// NewWorkbook renders a comparison report into a multi-sheet workbook:
// a summary tab, consolidated modification and presence tabs, an
// identifier-availability tab, and one detail tab per compared sheet.
// The caller owns the returned file and must Close it.
func NewWorkbook(report *compare.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4CAF50"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	w := &workbookWriter{file: f, headerStyle: header}

	if err := w.writeSummary(report); err != nil {
		return nil, err
	}
	if err := w.writeModifications(report); err != nil {
		return nil, err
	}
	if err := w.writePresence(report, "Only_Left", onlyLeft); err != nil {
		return nil, err
	}
	if err := w.writePresence(report, "Only_Right", onlyRight); err != nil {
		return nil, err
	}
	if err := w.writeIdentifierAnalysis(report); err != nil {
		return nil, err
	}
	for _, name := range sortedSheetNames(report) {
		if err := w.writeDetails(name, report.Sheets[name]); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteExcel renders the report as an xlsx workbook into w.
func WriteExcel(w io.Writer, report *compare.Report) error {
	f, err := NewWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveExcel renders the report as an xlsx workbook at path.
func SaveExcel(report *compare.Report, path string) error {
	f, err := NewWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

type presenceSide int

const (
	onlyLeft presenceSide = iota
	onlyRight
)

type workbookWriter struct {
	file        *excelize.File
	headerStyle int
}

// addSheet creates a named sheet with a styled header row. The first sheet
// replaces the workbook's default Sheet1.
func (w *workbookWriter) addSheet(name string, columns []string) error {
	if name == "Summary" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("failed to rename default sheet: %w", err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	row := make([]any, len(columns))
	for i, col := range columns {
		row[i] = col
	}
	if err := w.file.SetSheetRow(name, "A1", &row); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}

	end, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(name, "A1", end, w.headerStyle); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", name, err)
	}
	return nil
}

func (w *workbookWriter) setRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(sheet, cell, &values)
}

func (w *workbookWriter) writeSummary(report *compare.Report) error {
	columns := []string{
		"Sheet Name", "Left Rows", "Right Rows", "Identical", "Modified",
		"Only Left", "Only Right", "Common Columns", "Status",
	}
	if err := w.addSheet("Summary", columns); err != nil {
		return err
	}

	row := 2
	for _, name := range sortedSheetNames(report) {
		result := report.Sheets[name]
		status := "OK"
		if result.HasDifferences() {
			status = "DIFFERENT"
		}
		s := result.Summary
		values := []any{
			name, s.LeftRows, s.RightRows, s.Identical, s.Modified,
			s.OnlyLeft, s.OnlyRight, s.CommonColumns, status,
		}
		if err := w.setRow("Summary", row, values); err != nil {
			return err
		}
		row++
	}

	for _, name := range sortedKeys(report.Failed) {
		values := []any{name, nil, nil, nil, nil, nil, nil, nil, "FAILED: " + report.Failed[name]}
		if err := w.setRow("Summary", row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func (w *workbookWriter) writeModifications(report *compare.Report) error {
	identifiers := identifierColumns(report)
	changed := changedColumns(report)

	columns := append([]string{"Sheet Name"}, identifiers...)
	for _, col := range changed {
		columns = append(columns, col+" (Left)", col+" (Right)")
	}
	if err := w.addSheet("All_Modifications", columns); err != nil {
		return err
	}

	row := 2
	for _, name := range sortedSheetNames(report) {
		for _, mod := range report.Sheets[name].Rows.Modified {
			values := []any{name}
			for _, id := range identifiers {
				values = append(values, mod.Identifiers[id])
			}
			for _, col := range changed {
				change, ok := mod.Changes[col]
				if !ok {
					values = append(values, nil, nil)
					continue
				}
				values = append(values, change.Left, change.Right)
			}
			if err := w.setRow("All_Modifications", row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (w *workbookWriter) writePresence(report *compare.Report, sheet string, side presenceSide) error {
	identifiers := identifierColumns(report)
	columns := append([]string{"Sheet Name", "Row"}, identifiers...)
	columns = append(columns, "Data")
	if err := w.addSheet(sheet, columns); err != nil {
		return err
	}

	row := 2
	for _, name := range sortedSheetNames(report) {
		rows := report.Sheets[name].Rows.OnlyLeft
		if side == onlyRight {
			rows = report.Sheets[name].Rows.OnlyRight
		}
		for _, only := range rows {
			values := []any{name, only.Row}
			for _, id := range identifiers {
				values = append(values, only.Identifiers[id])
			}
			values = append(values, recordSummary(only.Data))
			if err := w.setRow(sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (w *workbookWriter) writeIdentifierAnalysis(report *compare.Report) error {
	columns := []string{
		"Sheet Name", "Available Identifiers", "Missing Identifiers",
		"Left Duplicate Keys", "Right Duplicate Keys", "Duplicate Key Samples",
	}
	if err := w.addSheet("Identifier_Analysis", columns); err != nil {
		return err
	}

	row := 2
	for _, name := range sortedSheetNames(report) {
		result := report.Sheets[name]
		values := []any{
			name,
			strings.Join(result.AvailableIdentifiers, ", "),
			strings.Join(result.MissingIdentifiers, ", "),
			result.LeftDuplicateKeys,
			result.RightDuplicateKeys,
			strings.Join(result.DuplicateKeySamples, "; "),
		}
		if err := w.setRow("Identifier_Analysis", row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func (w *workbookWriter) writeDetails(name string, result *compare.SheetResult) error {
	if !result.HasDifferences() {
		return nil
	}

	sheet := detailSheetName(name)
	columns := []string{"Outcome", "Key", "Column", "Left Value", "Right Value"}
	if err := w.addSheet(sheet, columns); err != nil {
		return err
	}

	row := 2
	for _, mod := range result.Rows.Modified {
		for _, col := range sortedKeys(mod.Changes) {
			change := mod.Changes[col]
			if err := w.setRow(sheet, row, []any{"modified", mod.Key, col, change.Left, change.Right}); err != nil {
				return err
			}
			row++
		}
	}
	for _, only := range result.Rows.OnlyLeft {
		if err := w.setRow(sheet, row, []any{"only_left", only.Key, nil, recordSummary(only.Data), nil}); err != nil {
			return err
		}
		row++
	}
	for _, only := range result.Rows.OnlyRight {
		if err := w.setRow(sheet, row, []any{"only_right", only.Key, nil, nil, recordSummary(only.Data)}); err != nil {
			return err
		}
		row++
	}
	return nil
}

// detailSheetName builds a per-sheet detail tab name within Excel's limit.
func detailSheetName(sheet string) string {
	name := "Details_" + sheet
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	return name
}

// identifierColumns returns the union of available identifiers across all
// compared sheets, preserving first-seen order.
func identifierColumns(report *compare.Report) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, name := range sortedSheetNames(report) {
		for _, id := range report.Sheets[name].AvailableIdentifiers {
			if !seen[id] {
				seen[id] = true
				columns = append(columns, id)
			}
		}
	}
	return columns
}

// changedColumns returns the sorted union of columns that changed in any
// modified row of any sheet.
func changedColumns(report *compare.Report) []string {
	seen := make(map[string]bool)
	for _, result := range report.Sheets {
		for _, mod := range result.Rows.Modified {
			for col := range mod.Changes {
				seen[col] = true
			}
		}
	}
	columns := make([]string, 0, len(seen))
	for col := range seen {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}

// recordSummary flattens a record into a stable "col=value" listing.
func recordSummary(record compare.Record) string {
	parts := make([]string, 0, len(record))
	for _, col := range sortedKeys(record) {
		parts = append(parts, fmt.Sprintf("%s=%s", col, compare.Canonical(record[col])))
	}
	return strings.Join(parts, ", ")
}

func sortedSheetNames(report *compare.Report) []string {
	return sortedKeys(report.Sheets)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

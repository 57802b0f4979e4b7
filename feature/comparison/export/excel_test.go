package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/abhayror17/Excel-Comparator/core/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *compare.Report {
	return &compare.Report{
		LeftName:  "left.xlsx",
		RightName: "right.xlsx",
		Sheets: map[string]*compare.SheetResult{
			"Programs": {
				Sheet:                "Programs",
				CommonColumns:        []string{"Channel Name", "val"},
				AvailableIdentifiers: []string{"Channel Name"},
				MissingIdentifiers:   []string{"Program Date", "Clip Start Time"},
				LeftDistinctKeys:     2,
				RightDistinctKeys:    2,
				Rows: compare.Result{
					Identical: []compare.MatchedRow{
						{Key: "A", Identifiers: map[string]string{"Channel Name": "A"}},
					},
					Modified: []compare.ModifiedRow{
						{
							Key:         "B",
							Identifiers: map[string]string{"Channel Name": "B"},
							Changes:     map[string]compare.Change{"val": {Left: 5, Right: 6}},
						},
					},
					OnlyLeft: []compare.OnlyRow{
						{
							Key:         "C",
							Row:         3,
							Identifiers: map[string]string{"Channel Name": "C"},
							Data:        compare.Record{"Channel Name": "C", "val": 7},
						},
					},
				},
				Summary: compare.SheetSummary{
					LeftRows: 3, RightRows: 2,
					Identical: 1, Modified: 1, OnlyLeft: 1,
					CommonColumns: 2,
				},
			},
		},
		SkippedLeft: []string{"Notes"},
		Failed:      map[string]string{"Broken": "missing header row"},
		Stats: compare.Stats{
			SheetsCompared:        1,
			SheetsWithDifferences: 1,
			TotalIdentical:        1,
			TotalModified:         1,
			TotalOnlyLeft:         1,
		},
	}
}

func TestNewWorkbook(t *testing.T) {
	f, err := NewWorkbook(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"Summary", "All_Modifications", "Only_Left", "Only_Right",
		"Identifier_Analysis", "Details_Programs",
	}, f.GetSheetList())

	status, err := f.GetCellValue("Summary", "I2")
	require.NoError(t, err)
	assert.Equal(t, "DIFFERENT", status)

	failed, err := f.GetCellValue("Summary", "I3")
	require.NoError(t, err)
	assert.Equal(t, "FAILED: missing header row", failed)

	left, err := f.GetCellValue("All_Modifications", "C2")
	require.NoError(t, err)
	right, err := f.GetCellValue("All_Modifications", "D2")
	require.NoError(t, err)
	assert.Equal(t, "5", left)
	assert.Equal(t, "6", right)

	data, err := f.GetCellValue("Only_Left", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Channel Name=C, val=7", data)

	missing, err := f.GetCellValue("Identifier_Analysis", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Program Date, Clip Start Time", missing)
}

func TestNewWorkbook_SkipsCleanDetailSheets(t *testing.T) {
	report := sampleReport()
	report.Sheets["Programs"].Rows = compare.Result{
		Identical: report.Sheets["Programs"].Rows.Identical,
	}
	report.Sheets["Programs"].Summary = compare.SheetSummary{LeftRows: 1, RightRows: 1, Identical: 1}

	f, err := NewWorkbook(report)
	require.NoError(t, err)
	defer f.Close()

	assert.NotContains(t, f.GetSheetList(), "Details_Programs")
}

func TestDetailSheetName(t *testing.T) {
	assert.Equal(t, "Details_Programs", detailSheetName("Programs"))

	long := detailSheetName("A Very Long Sheet Name That Overflows")
	assert.Len(t, long, maxSheetNameLen)
}

func TestWriteExcelRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleReport()))
	assert.Greater(t, buf.Len(), 0)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded compare.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "left.xlsx", decoded.LeftName)
	assert.Equal(t, 1, decoded.Sheets["Programs"].Summary.Modified)
	assert.Equal(t, []string{"Notes"}, decoded.SkippedLeft)
}

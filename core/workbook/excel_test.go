package workbook

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook creates an in-memory .xlsx with one "Programs" sheet.
func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Programs"))
	require.NoError(t, f.SetSheetRow("Programs", "A1", &[]any{"Channel Name", "Program Date", "Clip Start Time", "val"}))
	require.NoError(t, f.SetSheetRow("Programs", "A2", &[]any{"A", "2024-01-01", "10:00", 5}))
	// Short row: "val" is absent and must read back as null.
	require.NoError(t, f.SetSheetRow("Programs", "A3", &[]any{"B", "2024-01-02", "11:00"}))

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExcelSource_SheetNames(t *testing.T) {
	src, err := OpenReader(buildWorkbook(t), "left.xlsx")
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, "left.xlsx", src.Name())

	names, err := src.SheetNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Programs", "Empty"}, names)
}

func TestExcelSource_Sheet(t *testing.T) {
	src, err := OpenReader(buildWorkbook(t), "left.xlsx")
	require.NoError(t, err)
	defer src.Close()

	ds, err := src.Sheet(context.Background(), "Programs")
	require.NoError(t, err)

	assert.Equal(t, []string{"Channel Name", "Program Date", "Clip Start Time", "val"}, ds.Columns)
	require.Len(t, ds.Records, 2)

	first := ds.Records[0]
	assert.Equal(t, "A", first["Channel Name"])
	assert.Equal(t, "5", first["val"]) // cells arrive in formatted string form

	second := ds.Records[1]
	assert.Equal(t, "B", second["Channel Name"])
	assert.Nil(t, second["val"]) // short row pads to null
}

func TestExcelSource_EmptySheet(t *testing.T) {
	src, err := OpenReader(buildWorkbook(t), "left.xlsx")
	require.NoError(t, err)
	defer src.Close()

	ds, err := src.Sheet(context.Background(), "Empty")
	require.NoError(t, err)
	assert.Empty(t, ds.Columns)
	assert.Empty(t, ds.Records)
}

func TestOpenReader_InvalidData(t *testing.T) {
	_, err := OpenReader(bytes.NewBufferString("not a workbook"), "bad.xlsx")
	assert.Error(t, err)
}

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSheet_ColumnSets(t *testing.T) {
	left := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time", "val", "left_extra"},
		Records: nil,
	}
	right := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time", "val", "right_extra"},
		Records: nil,
	}

	res, err := CompareSheet("Programs", left, right, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Channel Name", "Clip Start Time", "Program Date", "val"}, res.CommonColumns)
	assert.Equal(t, []string{"left_extra"}, res.LeftOnlyColumns)
	assert.Equal(t, []string{"right_extra"}, res.RightOnlyColumns)

	// The three sets partition the union of both column sets.
	union := len(res.CommonColumns) + len(res.LeftOnlyColumns) + len(res.RightOnlyColumns)
	assert.Equal(t, 6, union)
}

func TestCompareSheet_MissingIdentifierDegrades(t *testing.T) {
	// "Program Date" is absent from the right schema: comparison proceeds
	// with the available subset and records the missing identifier.
	left := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time", "val"},
		Records: []Record{
			{"Channel Name": "A", "Program Date": "2024-01-01", "Clip Start Time": "10:00", "val": 1},
		},
	}
	right := Dataset{
		Columns: []string{"Channel Name", "Clip Start Time", "val"},
		Records: []Record{
			{"Channel Name": "A", "Clip Start Time": "10:00", "val": 1},
		},
	}

	res, err := CompareSheet("Programs", left, right, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Channel Name", "Clip Start Time"}, res.AvailableIdentifiers)
	assert.Equal(t, []string{"Program Date"}, res.MissingIdentifiers)

	// "Program Date" is excluded from common columns, so the rows match.
	assert.Equal(t, 1, res.Summary.Identical)
	assert.Equal(t, 0, res.Summary.Modified)
}

// When the identifier list is forced to include a field that one side lacks
// in individual records, the differing sentinels (missing vs null) split the
// key into separate only-left / only-right entries.
func TestCompareSheet_NullVersusMissingSplitsKeys(t *testing.T) {
	// Both schemas advertise "Program Date" so it stays an available
	// identifier, but the left record lacks the field entirely while the
	// right record carries an explicit null.
	left := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time"},
		Records: []Record{
			{"Channel Name": "A", "Clip Start Time": "10:00"},
		},
	}
	right := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time"},
		Records: []Record{
			{"Channel Name": "A", "Program Date": nil, "Clip Start Time": "10:00"},
		},
	}

	res, err := CompareSheet("Programs", left, right, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.OnlyLeft)
	assert.Equal(t, 1, res.Summary.OnlyRight)
	assert.Equal(t, 0, res.Summary.Identical)
	assert.Equal(t, 0, res.Summary.Modified)

	assert.Equal(t, "A|MISSING|10:00", res.Rows.OnlyLeft[0].Key)
	assert.Equal(t, "A|NULL|10:00", res.Rows.OnlyRight[0].Key)
}

func TestCompareSheet_StrictDuplicateKeys(t *testing.T) {
	records := []Record{
		{"Channel Name": "A", "Program Date": "d", "Clip Start Time": "t"},
		{"Channel Name": "A", "Program Date": "d", "Clip Start Time": "t"},
	}
	ds := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time"},
		Records: records,
	}

	// Default policy: last-write-wins, collision surfaced as data quality.
	res, err := CompareSheet("Programs", ds, ds, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.LeftDuplicateKeys)
	assert.Equal(t, 1, res.RightDuplicateKeys)
	assert.NotEmpty(t, res.DuplicateKeySamples)

	// Strict mode promotes the collision to an error.
	_, err = CompareSheet("Programs", ds, ds, Options{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKeys)
}

func TestCompareSheet_SummaryCounts(t *testing.T) {
	left := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time", "val"},
		Records: []Record{
			{"Channel Name": "A", "Program Date": "d1", "Clip Start Time": "t", "val": 1},
			{"Channel Name": "A", "Program Date": "d2", "Clip Start Time": "t", "val": 2},
			{"Channel Name": "A", "Program Date": "d3", "Clip Start Time": "t", "val": 3},
		},
	}
	right := Dataset{
		Columns: []string{"Channel Name", "Program Date", "Clip Start Time", "val"},
		Records: []Record{
			{"Channel Name": "A", "Program Date": "d1", "Clip Start Time": "t", "val": 1},
			{"Channel Name": "A", "Program Date": "d2", "Clip Start Time": "t", "val": 99},
			{"Channel Name": "A", "Program Date": "d4", "Clip Start Time": "t", "val": 4},
		},
	}

	obs := newCountingObserver()
	res, err := CompareSheet("Programs", left, right, Options{Observer: obs})
	require.NoError(t, err)

	assert.Equal(t, SheetSummary{
		LeftRows:      3,
		RightRows:     3,
		Identical:     1,
		Modified:      1,
		OnlyLeft:      1,
		OnlyRight:     1,
		CommonColumns: 4,
	}, res.Summary)
	assert.True(t, res.HasDifferences())
	assert.Equal(t, []string{"Programs"}, obs.sheets)
}

func TestSummarize(t *testing.T) {
	clean := &SheetResult{Summary: SheetSummary{Identical: 10}}
	dirty := &SheetResult{Summary: SheetSummary{Identical: 3, Modified: 2, OnlyLeft: 1}}

	t.Run("All sheets clean", func(t *testing.T) {
		stats := Summarize(map[string]*SheetResult{"a": clean})
		assert.True(t, stats.Identical)
		assert.Equal(t, 1, stats.SheetsCompared)
		assert.Equal(t, 0, stats.SheetsWithDifferences)
		assert.Equal(t, 10, stats.TotalIdentical)
	})

	t.Run("One sheet with differences", func(t *testing.T) {
		stats := Summarize(map[string]*SheetResult{"a": clean, "b": dirty})
		assert.False(t, stats.Identical)
		assert.Equal(t, 2, stats.SheetsCompared)
		assert.Equal(t, 1, stats.SheetsWithDifferences)
		assert.Equal(t, 13, stats.TotalIdentical)
		assert.Equal(t, 2, stats.TotalModified)
		assert.Equal(t, 1, stats.TotalOnlyLeft)
		assert.Equal(t, 0, stats.TotalOnlyRight)
	})

	t.Run("No sheets", func(t *testing.T) {
		stats := Summarize(nil)
		assert.True(t, stats.Identical)
		assert.Equal(t, 0, stats.SheetsCompared)
	})
}

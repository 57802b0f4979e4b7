package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIndex(t *testing.T) {
	identifiers := []string{"Channel Name"}
	records := []Record{
		{"Channel Name": "A", "val": 1},
		{"Channel Name": "B", "val": 2},
	}

	ix := BuildIndex(records, identifiers)

	assert.Equal(t, 2, ix.Distinct())
	assert.Equal(t, 2, ix.Rows)
	assert.Equal(t, 0, ix.Duplicates)

	entry, ok := ix.Entries["B"]
	assert.True(t, ok)
	assert.Equal(t, 1, entry.Row)
	assert.Equal(t, records[1], entry.Record)
	assert.Equal(t, map[string]string{"Channel Name": "B"}, entry.Identifiers)
}

// Duplicate keys follow last-write-wins: the later record owns the key, and
// the collision is counted and sampled instead of silently discarded.
func TestBuildIndex_LastWriteWins(t *testing.T) {
	identifiers := []string{"Channel Name"}
	records := []Record{
		{"Channel Name": "A", "val": "first"},
		{"Channel Name": "A", "val": "second"},
		{"Channel Name": "B", "val": "other"},
	}

	ix := BuildIndex(records, identifiers)

	assert.Equal(t, 2, ix.Distinct())
	assert.Equal(t, 3, ix.Rows)
	assert.Equal(t, 1, ix.Duplicates)
	assert.Equal(t, []string{"A"}, ix.DuplicateKeys)

	assert.Equal(t, "second", ix.Entries["A"].Record["val"])
	assert.Equal(t, 1, ix.Entries["A"].Row)
}

func TestBuildIndex_DuplicateSampleBounded(t *testing.T) {
	identifiers := []string{"Channel Name"}
	records := make([]Record, 0, 30)
	for i := 0; i < 30; i++ {
		records = append(records, Record{"Channel Name": "A"})
	}

	ix := BuildIndex(records, identifiers)

	assert.Equal(t, 29, ix.Duplicates)
	assert.Len(t, ix.DuplicateKeys, duplicateSampleLimit)
}

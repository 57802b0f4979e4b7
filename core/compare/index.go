package compare

// duplicateSampleLimit bounds how many colliding keys an index retains for
// data-quality reporting.
const duplicateSampleLimit = 10

// Entry is one indexed record: the record itself, its original row position,
// and its resolved identifier values.
type Entry struct {
	Record      Record
	Row         int
	Identifiers map[string]string
}

// DatasetIndex maps composite key to the single record owning that key for
// one dataset on one sheet. When two records collapse to the same key the
// later one overwrites the earlier one (last-write-wins); collisions are
// counted and sampled rather than silently discarded.
type DatasetIndex struct {
	Entries map[string]Entry

	// Rows is the total number of input records, including overwritten ones.
	Rows int

	// Duplicates counts records that overwrote an earlier record's key.
	Duplicates int

	// DuplicateKeys is a bounded sample of keys that collided.
	DuplicateKeys []string
}

// BuildIndex constructs a DatasetIndex over the records in their given order,
// computing each key via BuildKey. Pure function over its input.
func BuildIndex(records []Record, identifiers []string) *DatasetIndex {
	ix := &DatasetIndex{
		Entries: make(map[string]Entry, len(records)),
		Rows:    len(records),
	}
	for pos, rec := range records {
		key := BuildKey(rec, identifiers)
		if _, exists := ix.Entries[key]; exists {
			ix.Duplicates++
			if len(ix.DuplicateKeys) < duplicateSampleLimit {
				ix.DuplicateKeys = append(ix.DuplicateKeys, key)
			}
		}
		ix.Entries[key] = Entry{
			Record:      rec,
			Row:         pos,
			Identifiers: ExtractIdentifiers(rec, identifiers),
		}
	}
	return ix
}

// Distinct returns the number of distinct composite keys in the index.
func (ix *DatasetIndex) Distinct() int {
	return len(ix.Entries)
}

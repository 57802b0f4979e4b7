package compare

// Record represents a single row as a mapping from column name to cell value.
// Values are one of: string, numeric, bool, time.Time, or nil for empty cells.
// Records are never mutated after construction.
type Record map[string]any

// Dataset is one side of a sheet comparison: the column list as reported by
// the source, plus the ordered rows.
type Dataset struct {
	Columns []string
	Records []Record
}

// DefaultIdentifiers is the default ordered identifier-field list used to
// build composite keys when the caller does not override it.
var DefaultIdentifiers = []string{"Channel Name", "Program Date", "Clip Start Time"}

// Change holds both raw values of a column that differs between the two
// datasets. Values are kept untyped so sinks can render them natively.
type Change struct {
	Left  any `json:"left"`
	Right any `json:"right"`
}

// MatchedRow describes a key present in both datasets with no differing
// common column.
type MatchedRow struct {
	Key         string            `json:"key"`
	LeftRow     int               `json:"left_row"`
	RightRow    int               `json:"right_row"`
	Identifiers map[string]string `json:"identifiers"`
}

// ModifiedRow describes a key present in both datasets with at least one
// differing common column. Changes maps column name to both raw values.
type ModifiedRow struct {
	Key         string            `json:"key"`
	LeftRow     int               `json:"left_row"`
	RightRow    int               `json:"right_row"`
	Identifiers map[string]string `json:"identifiers"`
	Changes     map[string]Change `json:"changes"`
}

// OnlyRow describes a key present in exactly one dataset. Row is the original
// position in the owning dataset and Data is the full record payload.
type OnlyRow struct {
	Key         string            `json:"key"`
	Row         int               `json:"row"`
	Identifiers map[string]string `json:"identifiers"`
	Data        Record            `json:"data"`
}

// Result holds the four disjoint outcome collections of a reconciliation.
// Every key from the union of both indices lands in exactly one of them.
type Result struct {
	Identical []MatchedRow  `json:"identical"`
	Modified  []ModifiedRow `json:"modified"`
	OnlyLeft  []OnlyRow     `json:"only_left"`
	OnlyRight []OnlyRow     `json:"only_right"`
}

// SheetSummary provides aggregate counts for a single sheet comparison.
type SheetSummary struct {
	LeftRows      int `json:"left_rows"`
	RightRows     int `json:"right_rows"`
	Identical     int `json:"identical"`
	Modified      int `json:"modified"`
	OnlyLeft      int `json:"only_left"`
	OnlyRight     int `json:"only_right"`
	CommonColumns int `json:"common_columns"`
}

// SheetResult is the full outcome of comparing one sheet: structural
// statistics, identifier availability, duplicate-key data quality info,
// and the classified rows.
type SheetResult struct {
	Sheet string `json:"sheet"`

	// Column-set statistics. The three column sets partition the union of
	// both sides' columns.
	CommonColumns    []string `json:"common_columns"`
	LeftOnlyColumns  []string `json:"left_only_columns"`
	RightOnlyColumns []string `json:"right_only_columns"`

	// Identifier availability for this sheet. Comparison proceeds with the
	// available subset; missing identifiers lower key specificity and are a
	// data-quality warning, not an error.
	AvailableIdentifiers []string `json:"available_identifiers"`
	MissingIdentifiers   []string `json:"missing_identifiers"`

	// Duplicate-key statistics from index construction (last-write-wins).
	LeftDistinctKeys    int      `json:"left_distinct_keys"`
	RightDistinctKeys   int      `json:"right_distinct_keys"`
	LeftDuplicateKeys   int      `json:"left_duplicate_keys"`
	RightDuplicateKeys  int      `json:"right_duplicate_keys"`
	DuplicateKeySamples []string `json:"duplicate_key_samples,omitempty"`

	Rows    Result       `json:"rows"`
	Summary SheetSummary `json:"summary"`
}

// HasDifferences reports whether the sheet has any modified or one-sided rows.
func (r *SheetResult) HasDifferences() bool {
	return r.Summary.Modified > 0 || r.Summary.OnlyLeft > 0 || r.Summary.OnlyRight > 0
}

// Report is the roll-up of a whole comparison run, keyed by sheet name.
// Sheets present in only one workbook are skipped, not compared.
type Report struct {
	LeftName  string `json:"left_name"`
	RightName string `json:"right_name"`

	Sheets map[string]*SheetResult `json:"sheets"`

	// SkippedLeft/SkippedRight list sheets present in only one workbook.
	SkippedLeft  []string `json:"skipped_left,omitempty"`
	SkippedRight []string `json:"skipped_right,omitempty"`

	// Failed maps sheet name to the error that prevented its comparison.
	// One bad sheet never blocks the others.
	Failed map[string]string `json:"failed,omitempty"`

	Stats Stats `json:"stats"`
}

// Stats provides overall totals across all compared sheets.
type Stats struct {
	SheetsCompared        int  `json:"sheets_compared"`
	SheetsWithDifferences int  `json:"sheets_with_differences"`
	TotalIdentical        int  `json:"total_identical"`
	TotalModified         int  `json:"total_modified"`
	TotalOnlyLeft         int  `json:"total_only_left"`
	TotalOnlyRight        int  `json:"total_only_right"`
	Identical             bool `json:"identical"`
}

// Options controls a sheet comparison.
type Options struct {
	// Identifiers is the ordered identifier-field list. Defaults to
	// DefaultIdentifiers when empty.
	Identifiers []string

	// Strict promotes duplicate composite keys within one dataset from a
	// data-quality warning to a sheet-level error.
	Strict bool

	// Observer receives checkpoint callbacks. Defaults to NopObserver.
	Observer Observer
}

func (o Options) identifiers() []string {
	if len(o.Identifiers) == 0 {
		return DefaultIdentifiers
	}
	return o.Identifiers
}

func (o Options) observer() Observer {
	if o.Observer == nil {
		return NopObserver{}
	}
	return o.Observer
}

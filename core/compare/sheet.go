package compare

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateKeys is returned by CompareSheet in strict mode when either
// dataset contains records that collapse to the same composite key.
var ErrDuplicateKeys = errors.New("duplicate composite keys")

// CompareSheet compares one sheet's two datasets. It determines which of the
// configured identifier fields are present in both column sets and proceeds
// with the available subset (recording the missing ones as a data-quality
// warning), computes the common-column intersection, builds both indices, and
// delegates to Reconcile.
//
// The only error condition is strict-mode duplicate keys; every data-shape
// irregularity degrades into the result instead of failing.
func CompareSheet(name string, left, right Dataset, opts Options) (*SheetResult, error) {
	identifiers := opts.identifiers()
	obs := opts.observer()

	available, missing := splitIdentifiers(identifiers, left.Columns, right.Columns)
	common, leftOnly, rightOnly := splitColumns(left.Columns, right.Columns)

	leftIx := BuildIndex(left.Records, available)
	rightIx := BuildIndex(right.Records, available)

	if opts.Strict && (leftIx.Duplicates > 0 || rightIx.Duplicates > 0) {
		return nil, fmt.Errorf("%w in sheet %q: left=%d right=%d",
			ErrDuplicateKeys, name, leftIx.Duplicates, rightIx.Duplicates)
	}

	rows := Reconcile(leftIx, rightIx, common, obs)

	result := &SheetResult{
		Sheet:                name,
		CommonColumns:        common,
		LeftOnlyColumns:      leftOnly,
		RightOnlyColumns:     rightOnly,
		AvailableIdentifiers: available,
		MissingIdentifiers:   missing,
		LeftDistinctKeys:     leftIx.Distinct(),
		RightDistinctKeys:    rightIx.Distinct(),
		LeftDuplicateKeys:    leftIx.Duplicates,
		RightDuplicateKeys:   rightIx.Duplicates,
		DuplicateKeySamples:  append(leftIx.DuplicateKeys, rightIx.DuplicateKeys...),
		Rows:                 rows,
		Summary: SheetSummary{
			LeftRows:      leftIx.Rows,
			RightRows:     rightIx.Rows,
			Identical:     len(rows.Identical),
			Modified:      len(rows.Modified),
			OnlyLeft:      len(rows.OnlyLeft),
			OnlyRight:     len(rows.OnlyRight),
			CommonColumns: len(common),
		},
	}

	obs.SheetCompleted(name, result.Summary)
	return result, nil
}

// splitIdentifiers partitions the configured identifiers into those present
// in both column sets (preserving configured order) and those missing from
// at least one side.
func splitIdentifiers(identifiers, leftCols, rightCols []string) (available, missing []string) {
	leftSet := columnSet(leftCols)
	rightSet := columnSet(rightCols)

	available = []string{}
	missing = []string{}
	for _, id := range identifiers {
		_, inLeft := leftSet[id]
		_, inRight := rightSet[id]
		if inLeft && inRight {
			available = append(available, id)
		} else {
			missing = append(missing, id)
		}
	}
	return available, missing
}

// splitColumns computes the intersection and the two set differences of the
// column lists. The three results partition the union of both sets and are
// sorted for deterministic output.
func splitColumns(leftCols, rightCols []string) (common, leftOnly, rightOnly []string) {
	leftSet := columnSet(leftCols)
	rightSet := columnSet(rightCols)

	common = []string{}
	leftOnly = []string{}
	rightOnly = []string{}

	for col := range leftSet {
		if _, ok := rightSet[col]; ok {
			common = append(common, col)
		} else {
			leftOnly = append(leftOnly, col)
		}
	}
	for col := range rightSet {
		if _, ok := leftSet[col]; !ok {
			rightOnly = append(rightOnly, col)
		}
	}

	sort.Strings(common)
	sort.Strings(leftOnly)
	sort.Strings(rightOnly)
	return common, leftOnly, rightOnly
}

func columnSet(cols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		set[col] = struct{}{}
	}
	return set
}

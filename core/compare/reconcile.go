package compare

import "sort"

// Reconcile classifies every key present in either index into exactly one of
// the four outcomes. For keys present on both sides it runs per-column change
// detection over commonColumns with null-aware equality: two nulls are equal,
// one null or differing canonical string forms mark the column as changed,
// and both raw values are preserved for presentation.
//
// Keys are processed in sorted order so output is deterministic. The observer
// is invoked once per key and never influences classification.
func Reconcile(left, right *DatasetIndex, commonColumns []string, obs Observer) Result {
	if obs == nil {
		obs = NopObserver{}
	}

	keys := unionKeys(left, right)

	res := Result{
		Identical: []MatchedRow{},
		Modified:  []ModifiedRow{},
		OnlyLeft:  []OnlyRow{},
		OnlyRight: []OnlyRow{},
	}

	for _, key := range keys {
		le, inLeft := left.Entries[key]
		re, inRight := right.Entries[key]

		switch {
		case inLeft && inRight:
			changes := changedColumns(le.Record, re.Record, commonColumns)
			if len(changes) == 0 {
				res.Identical = append(res.Identical, MatchedRow{
					Key:         key,
					LeftRow:     le.Row,
					RightRow:    re.Row,
					Identifiers: le.Identifiers,
				})
				obs.KeyProcessed(key, OutcomeIdentical)
				continue
			}
			res.Modified = append(res.Modified, ModifiedRow{
				Key:         key,
				LeftRow:     le.Row,
				RightRow:    re.Row,
				Identifiers: le.Identifiers,
				Changes:     changes,
			})
			obs.KeyProcessed(key, OutcomeModified)

		case inLeft:
			res.OnlyLeft = append(res.OnlyLeft, OnlyRow{
				Key:         key,
				Row:         le.Row,
				Identifiers: le.Identifiers,
				Data:        le.Record,
			})
			obs.KeyProcessed(key, OutcomeOnlyLeft)

		default:
			res.OnlyRight = append(res.OnlyRight, OnlyRow{
				Key:         key,
				Row:         re.Row,
				Identifiers: re.Identifiers,
				Data:        re.Record,
			})
			obs.KeyProcessed(key, OutcomeOnlyRight)
		}
	}

	return res
}

// changedColumns compares the common columns of two records and returns the
// map of differing columns with both raw values. A column absent from a
// record is treated as null for that record.
func changedColumns(left, right Record, commonColumns []string) map[string]Change {
	var changes map[string]Change
	for _, col := range commonColumns {
		lv := left[col]
		rv := right[col]

		if IsNull(lv) && IsNull(rv) {
			continue
		}
		if IsNull(lv) || IsNull(rv) || Canonical(lv) != Canonical(rv) {
			if changes == nil {
				changes = make(map[string]Change)
			}
			changes[col] = Change{Left: lv, Right: rv}
		}
	}
	return changes
}

// unionKeys returns the sorted union of keys from both indices.
func unionKeys(left, right *DatasetIndex) []string {
	union := make(map[string]struct{}, left.Distinct()+right.Distinct())
	for key := range left.Entries {
		union[key] = struct{}{}
	}
	for key := range right.Entries {
		union[key] = struct{}{}
	}

	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

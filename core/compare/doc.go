// Package compare implements identifier-keyed reconciliation of two tabular
// datasets. Instead of positional matching, every record is identified by a
// composite key built from a configurable ordered list of identifier fields,
// so reordered, added, or removed rows are detected as logical changes.
//
// # Architecture
//
// The package consists of five components, leaf-first:
//
//  1. Key Builder: derives a composite key from a record's identifier values.
//     Null values and absent fields map to distinct sentinel tokens so the
//     two situations never produce the same key.
//
//  2. Record Index: maps composite key to (record, row position) for one
//     dataset. Duplicate keys follow a last-write-wins policy; collisions are
//     counted and sampled for data-quality reporting, and strict mode turns
//     them into an error.
//
//  3. Reconciler: unions the keys of both indices and classifies every key
//     into exactly one of identical / modified / only-left / only-right.
//     Change detection compares canonical string forms with null-aware
//     equality and preserves both raw values per changed column.
//
//  4. Sheet Comparator: orchestrates the above per sheet, resolving which
//     identifiers are available, intersecting column sets, and computing
//     structural statistics.
//
//  5. Aggregate Reporter: rolls sheet results up into overall totals and an
//     identical-or-not verdict.
//
// # Canonicalization
//
// Equality is by canonical string representation, not native type: a single
// Canonical function is applied to both sides for key parts and cell values,
// so numeric and date formatting edge cases are deterministic and testable.
//
// # Observers
//
// Progress reporting is decoupled from computation through the Observer
// interface, invoked at well-defined checkpoints (key classified, sheet
// completed). The core never writes to any output itself.
//
// # Usage Example
//
//	left := compare.Dataset{Columns: cols1, Records: rows1}
//	right := compare.Dataset{Columns: cols2, Records: rows2}
//
//	result, err := compare.CompareSheet("Programs", left, right, compare.Options{})
//
//	stats := compare.Summarize(map[string]*compare.SheetResult{"Programs": result})
package compare

package compare

import "strings"

// Sentinel tokens used in composite keys. A null value and a field absent
// from the record's schema are deliberately distinct so the two situations
// never collapse to the same key.
const (
	NullToken    = "NULL"
	MissingToken = "MISSING"
)

// KeySeparator joins the normalized identifier parts of a composite key.
// It is not expected to appear inside identifier values.
const KeySeparator = "|"

// BuildKey derives the composite key for a record from the ordered identifier
// field list. It is pure and never fails: a null value maps to NullToken and
// a field absent from the record maps to MissingToken.
func BuildKey(rec Record, identifiers []string) string {
	parts := make([]string, 0, len(identifiers))
	for _, field := range identifiers {
		parts = append(parts, identifierPart(rec, field))
	}
	return strings.Join(parts, KeySeparator)
}

// ExtractIdentifiers resolves the individual identifier values of a record
// using the same normalization as BuildKey. The result is attached to every
// classified row so report sinks can present filterable identifier columns
// instead of the raw composite key.
func ExtractIdentifiers(rec Record, identifiers []string) map[string]string {
	values := make(map[string]string, len(identifiers))
	for _, field := range identifiers {
		values[field] = identifierPart(rec, field)
	}
	return values
}

func identifierPart(rec Record, field string) string {
	v, ok := rec[field]
	switch {
	case !ok:
		return MissingToken
	case IsNull(v):
		return NullToken
	default:
		return Canonical(v)
	}
}

package compare

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// IsNull reports whether a cell value counts as null for comparison purposes.
// Empty spreadsheet cells are materialized as nil by the workbook sources.
func IsNull(v any) bool {
	return v == nil
}

// Canonical converts a cell value to the canonical string form shared by key
// construction and change detection. Both sides of a comparison go through
// this exact function, so equality of differently-typed but equivalent values
// (integer 5 vs float 5.0, bool true vs "true" is NOT equal) is deterministic.
//
// Rules:
//   - nil → ""
//   - string → surrounding whitespace trimmed
//   - bool → "true" / "false"
//   - integer kinds → base-10 form
//   - floats → integral values render without a fraction ("5", not "5.0"),
//     others via strconv 'g' formatting
//   - time.Time → RFC 3339, date-only values render as "2006-01-02"
//   - anything else → fmt %v, trimmed
func Canonical(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return canonicalFloat(val)
	case float32:
		return canonicalFloat(float64(val))
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case []byte:
		return strings.TrimSpace(string(val))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

func canonicalFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

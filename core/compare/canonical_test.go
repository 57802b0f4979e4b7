package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"Nil", nil, ""},
		{"String trimmed", "  hello ", "hello"},
		{"Bool true", true, "true"},
		{"Bool false", false, "false"},
		{"Int", 42, "42"},
		{"Int64", int64(-5), "-5"},
		{"Integral float drops fraction", 5.0, "5"},
		{"Fractional float", 5.5, "5.5"},
		{"Date-only time", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01"},
		{"Time with clock", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), "2024-01-01T10:30:00Z"},
		{"Bytes", []byte(" raw "), "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.val))
		})
	}
}

// Integer 5 and float 5.0 must share a canonical form so differently-typed
// but numerically equal cells compare as equal.
func TestCanonical_IntFloatCoincide(t *testing.T) {
	assert.Equal(t, Canonical(5), Canonical(5.0))
	assert.Equal(t, Canonical(int64(5)), Canonical(float32(5)))
}

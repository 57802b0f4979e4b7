package server_test

import (
	"testing"

	"github.com/abhayror17/Excel-Comparator/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Configured", 16, 16 * 2 * 1024 * 1024},
		{"Default on zero", 0, 64 * 2 * 1024 * 1024},
		{"Default on negative", -1, 64 * 2 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{MaxUploadMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

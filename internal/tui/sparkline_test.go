package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSparkline はスパークラインのスケーリングをテーブル駆動テストで検証します。
func TestSparkline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float64
		expected string
	}{
		{name: "empty series renders nothing", values: nil, expected: ""},
		{name: "minimum maps to the empty cell, maximum to full block", values: []float64{0, 100}, expected: " █"},
		{name: "constant series renders at the low block", values: []float64{5, 5, 5}, expected: "   "},
		{name: "monotonic series climbs through the glyphs", values: []float64{0, 1, 2, 3, 4, 5, 6, 7}, expected: " ▂▃▄▅▆▇█"},
		{name: "single value renders one cell", values: []float64{42}, expected: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sparkline(tt.values))
		})
	}
}

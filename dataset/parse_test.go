package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name  string
		cell  string
		value float64
		ok    bool
	}{
		{"decimal point", "1.5", 1.5, true},
		{"decimal comma", "1,5", 1.5, true},
		{"integer", "42", 42, true},
		{"negative", "-0.25", -0.25, true},
		{"zero", "0", 0, true},
		{"scientific notation", "2.5e-3", 0.0025, true},
		{"surrounding whitespace", "  3.14 ", 3.14, true},
		{"whitespace with comma", " 0,5\t", 0.5, true},
		{"comma as thousands separator still decimal", "1,000", 1.0, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"text", "n/a", 0, false},
		{"trailing unit", "1.5 mM", 0, false},
		{"two commas", "1,2,3", 0, false},
		{"nan literal", "NaN", 0, false},
		{"inf literal", "Inf", 0, false},
		{"negative inf literal", "-Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ParseCell(tt.cell)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.value, v)
			}
		})
	}
}

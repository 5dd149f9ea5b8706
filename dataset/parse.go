package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseCell parses a raw table cell into a finite float64.
//
// The rule is locale-tolerant: surrounding whitespace is trimmed and every
// comma is substituted with a period before parsing, so both "1.5" and
// "1,5" yield 1.5. The second return value reports whether the cell holds a
// usable number; cells that fail to parse or parse to NaN or ±Inf are
// absent, never zero.
func ParseCell(cell string) (float64, bool) {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", ".")

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

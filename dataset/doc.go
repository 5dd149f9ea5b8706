// Package dataset prepares raw tabular kinetics data for regression.
//
// The package models the input boundary of the fitting pipeline: a
// rectangular table of raw text cells (one substrate-concentration column
// plus N velocity columns) with a declared shape, per-row include flags,
// per-column labels, and a caller-owned Selection of active columns and
// excluded points. Prepare walks the table and emits one Series per active
// column, partitioned into included, excluded, and transform-eligible
// observation sets, ready for the fit package.
//
// # Parsing
//
// Cells are parsed with a locale-tolerant rule: surrounding whitespace is
// trimmed and any decimal comma is accepted as a decimal point, so "1,5"
// and " 1.5 " both parse as 1.5. Cells that do not parse, or that parse to
// NaN or ±Inf, are treated as absent and skipped. They are never coerced
// to zero.
//
// # Partitioning
//
// A row contributes an observation to a column only when the row's include
// flag is set and both its substrate cell and the column's velocity cell
// parse. Observations land in the series' Included or Excluded set
// according to the Selection's excluded-row set for that column. The
// transform-eligible subset (S≠0 and V≠0, required by the reciprocal
// transform) is collected across all contributing rows and split by the
// same exclusion test.
//
// Column and row order is always preserved; Prepare never reorders or
// deduplicates. A column whose included set holds fewer than
// MinSeriesPoints observations produces no Series.
//
// # Usage
//
//	table, err := dataset.NewTable(8, 2)
//	// ... fill cells with SetS / SetValue, label with SetLabel ...
//	sel := dataset.NewSelection(2)
//	sel.ExcludePoint(1, 7) // drop row 7 from column 1 only
//
//	series := table.Prepare(sel)
//	for _, s := range series {
//	    fmt.Printf("%s: %d included, %d excluded\n",
//	        s.Label, len(s.Included), len(s.Excluded))
//	}
package dataset

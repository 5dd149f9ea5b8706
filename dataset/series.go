package dataset

import (
	"github.com/arloliu/mmfit/internal/hash"
)

// MinSeriesPoints is the minimum number of included observations a column
// must carry to be emitted as a Series. Both regressions estimate two
// parameters, so anything smaller is underdetermined.
const MinSeriesPoints = 2

// Observation is a single (S, v) measurement: substrate concentration and
// observed reaction velocity, both finite real numbers. Row records the
// table row the observation came from.
type Observation struct {
	Row int
	S   float64
	V   float64
}

// Reciprocal returns the Lineweaver-Burk coordinates (1/S, 1/V) of the
// observation. Only transform-eligible observations (S≠0 and V≠0) have a
// defined reciprocal.
func (o Observation) Reciprocal() (x, y float64) {
	return 1 / o.S, 1 / o.V
}

// Series is one fittable column of observations, partitioned by the
// caller's point exclusions. ID is the xxHash64 of the label, stable
// across batches for the same label.
//
// Included and Excluded together hold every parsed observation of the
// column; only Included feeds parameter estimation, Excluded is kept for
// residual diagnostics against the accepted fit. TransformIncluded and
// TransformExcluded hold the transform-eligible subset (S≠0 and V≠0)
// split by the same exclusion test, feeding the linearized fit.
type Series struct {
	Column int
	Label  string
	ID     uint64

	Included []Observation
	Excluded []Observation

	TransformIncluded []Observation
	TransformExcluded []Observation
}

// Prepare walks the table under the given selection and emits one Series
// per active column, in column order.
//
// A row contributes to a column only when its include flag is set and both
// its S cell and the column's velocity cell parse (see ParseCell). Parsed
// observations land in Included or Excluded according to the selection's
// exclusion set for the column. The transform-eligible subset is collected
// over all contributing rows and split by the same test.
//
// Columns with fewer than MinSeriesPoints included observations are
// quietly dropped; reporting "not enough data" for them is the boundary
// layer's concern. Row order is preserved within every partition.
func (t *Table) Prepare(sel Selection) []Series {
	series := make([]Series, 0, t.cols)

	for col := 0; col < t.cols; col++ {
		if !sel.Active(col) {
			continue
		}
		excluded := sel.ExcludedRows(col)

		s := Series{
			Column: col,
			Label:  t.labels[col],
			ID:     hash.SeriesID(t.labels[col]),
		}

		for row := 0; row < t.rows; row++ {
			if !t.included[row] {
				continue
			}
			sVal, ok := ParseCell(t.s[row])
			if !ok {
				continue
			}
			vVal, ok := ParseCell(t.values[col][row])
			if !ok {
				continue
			}

			obs := Observation{Row: row, S: sVal, V: vVal}
			if excluded.Has(row) {
				s.Excluded = append(s.Excluded, obs)
			} else {
				s.Included = append(s.Included, obs)
			}

			if sVal != 0 && vVal != 0 {
				if excluded.Has(row) {
					s.TransformExcluded = append(s.TransformExcluded, obs)
				} else {
					s.TransformIncluded = append(s.TransformIncluded, obs)
				}
			}
		}

		if len(s.Included) >= MinSeriesPoints {
			series = append(series, s)
		}
	}

	return series
}

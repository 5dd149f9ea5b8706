package dataset

import (
	"fmt"
	"strconv"

	"github.com/arloliu/mmfit/errs"
)

// Table is a rectangular table of raw cells with a declared shape: one
// substrate-concentration (S) column plus a fixed number of velocity
// columns. The shape is fixed at construction; out-of-range writes return
// errors instead of growing the table.
//
// Cells hold raw text and are only interpreted by Prepare, so a Table can
// carry whatever the boundary layer pasted in, including blank and
// non-numeric cells. Every row starts included and every column starts
// labeled "v<col>".
type Table struct {
	rows, cols int

	s        []string   // raw S cells, one per row
	values   [][]string // raw velocity cells, indexed [col][row]
	included []bool     // per-row include flag
	labels   []string   // per-column series label
}

// NewTable creates a Table with the given number of rows and velocity
// columns. Both must be positive.
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, cols)
	}

	t := &Table{
		rows:     rows,
		cols:     cols,
		s:        make([]string, rows),
		values:   make([][]string, cols),
		included: make([]bool, rows),
		labels:   make([]string, cols),
	}
	for col := range t.values {
		t.values[col] = make([]string, rows)
		t.labels[col] = "v" + strconv.Itoa(col)
	}
	for row := range t.included {
		t.included[row] = true
	}

	return t, nil
}

// FromValues creates a fully populated Table from numeric slices: s holds
// the substrate concentrations and cols holds one velocity slice per
// column. Every column must have the same length as s.
//
// Values are rendered into cells with full round-trip precision, so
// Prepare recovers them exactly. Non-finite values render to cells that do
// not parse and therefore behave as absent.
func FromValues(s []float64, cols [][]float64) (*Table, error) {
	t, err := NewTable(len(s), len(cols))
	if err != nil {
		return nil, err
	}

	for row, v := range s {
		t.s[row] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	for col, values := range cols {
		if len(values) != len(s) {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d",
				errs.ErrInvalidDimensions, col, len(values), len(s))
		}
		for row, v := range values {
			t.values[col][row] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	return t, nil
}

// Rows returns the declared row count.
func (t *Table) Rows() int {
	return t.rows
}

// Columns returns the declared velocity-column count.
func (t *Table) Columns() int {
	return t.cols
}

// SetS sets the raw substrate-concentration cell for the given row.
func (t *Table) SetS(row int, cell string) error {
	if err := t.checkRow(row); err != nil {
		return err
	}
	t.s[row] = cell

	return nil
}

// SetValue sets the raw velocity cell for the given row and column.
func (t *Table) SetValue(row, col int, cell string) error {
	if err := t.checkRow(row); err != nil {
		return err
	}
	if err := t.checkColumn(col); err != nil {
		return err
	}
	t.values[col][row] = cell

	return nil
}

// SetRowIncluded toggles the include flag for the given row. Rows start
// included; a row with the flag cleared contributes no observations to any
// series.
func (t *Table) SetRowIncluded(row int, included bool) error {
	if err := t.checkRow(row); err != nil {
		return err
	}
	t.included[row] = included

	return nil
}

// SetLabel sets the series label for the given column, replacing the
// default "v<col>" label.
func (t *Table) SetLabel(col int, label string) error {
	if err := t.checkColumn(col); err != nil {
		return err
	}
	t.labels[col] = label

	return nil
}

// Label returns the series label of the given column, or an empty string
// when col is out of range.
func (t *Table) Label(col int) string {
	if col < 0 || col >= t.cols {
		return ""
	}

	return t.labels[col]
}

func (t *Table) checkRow(row int) error {
	if row < 0 || row >= t.rows {
		return fmt.Errorf("%w: row %d of %d", errs.ErrRowOutOfRange, row, t.rows)
	}

	return nil
}

func (t *Table) checkColumn(col int) error {
	if col < 0 || col >= t.cols {
		return fmt.Errorf("%w: column %d of %d", errs.ErrColumnOutOfRange, col, t.cols)
	}

	return nil
}

package dataset

// RowSet is a set of row indices, used to mark points excluded from a fit.
type RowSet map[int]struct{}

// Has reports whether the set contains the given row. Safe on a nil set.
func (s RowSet) Has(row int) bool {
	_, ok := s[row]
	return ok
}

// Add inserts the given row into the set.
func (s RowSet) Add(row int) {
	s[row] = struct{}{}
}

// Remove deletes the given row from the set. Safe on a nil set.
func (s RowSet) Remove(row int) {
	delete(s, row)
}

// Clone returns an independent copy of the set. A nil set clones to an
// empty, usable set.
func (s RowSet) Clone() RowSet {
	clone := make(RowSet, len(s))
	for row := range s {
		clone[row] = struct{}{}
	}

	return clone
}

// Selection holds the caller-owned fitting state for a table: which
// columns participate and which individual points are excluded per column.
// It is passed into Prepare on every invocation; the fitting core keeps no
// copy of it between calls.
//
// A fresh Selection starts with every column active and no exclusions.
// Columns outside the declared range are treated as inactive.
type Selection struct {
	active   []bool
	excluded []RowSet
}

// NewSelection creates a Selection for the given number of columns, all
// active with empty exclusion sets.
func NewSelection(cols int) Selection {
	sel := Selection{
		active:   make([]bool, cols),
		excluded: make([]RowSet, cols),
	}
	for col := range sel.active {
		sel.active[col] = true
		sel.excluded[col] = make(RowSet)
	}

	return sel
}

// SetActive toggles whether the given column participates in fitting.
// Out-of-range columns are ignored.
func (sel *Selection) SetActive(col int, active bool) {
	if col < 0 || col >= len(sel.active) {
		return
	}
	sel.active[col] = active
}

// ExcludePoint marks the given row excluded for the given column only.
// Out-of-range columns are ignored.
func (sel *Selection) ExcludePoint(col, row int) {
	if col < 0 || col >= len(sel.excluded) {
		return
	}
	sel.excluded[col].Add(row)
}

// IncludePoint removes the given row from the given column's exclusion
// set. Out-of-range columns are ignored.
func (sel *Selection) IncludePoint(col, row int) {
	if col < 0 || col >= len(sel.excluded) {
		return
	}
	sel.excluded[col].Remove(row)
}

// Reset reactivates every column and clears all exclusion sets.
func (sel *Selection) Reset() {
	for col := range sel.active {
		sel.active[col] = true
		sel.excluded[col] = make(RowSet)
	}
}

// Active reports whether the given column participates in fitting.
// Out-of-range columns report false.
func (sel Selection) Active(col int) bool {
	if col < 0 || col >= len(sel.active) {
		return false
	}

	return sel.active[col]
}

// ExcludedRows returns the exclusion set for the given column, or nil when
// col is out of range. The returned set is the live set, not a copy.
func (sel Selection) ExcludedRows(col int) RowSet {
	if col < 0 || col >= len(sel.excluded) {
		return nil
	}

	return sel.excluded[col]
}

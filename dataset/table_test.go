package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmfit/errs"
)

func TestNewTable(t *testing.T) {
	t.Run("ValidDimensions", func(t *testing.T) {
		table, err := NewTable(4, 2)
		require.NoError(t, err)
		require.NotNil(t, table)
		require.Equal(t, 4, table.Rows())
		require.Equal(t, 2, table.Columns())
	})

	t.Run("DefaultLabels", func(t *testing.T) {
		table, err := NewTable(2, 3)
		require.NoError(t, err)
		require.Equal(t, "v0", table.Label(0))
		require.Equal(t, "v1", table.Label(1))
		require.Equal(t, "v2", table.Label(2))
	})

	t.Run("InvalidDimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {2, -1}, {0, 0}} {
			_, err := NewTable(dims[0], dims[1])
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidDimensions)
		}
	})
}

func TestTable_Setters(t *testing.T) {
	table, err := NewTable(3, 2)
	require.NoError(t, err)

	t.Run("SetS", func(t *testing.T) {
		require.NoError(t, table.SetS(0, "1.5"))
		require.NoError(t, table.SetS(2, "2,5"))

		err := table.SetS(3, "9")
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)
		err = table.SetS(-1, "9")
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)
	})

	t.Run("SetValue", func(t *testing.T) {
		require.NoError(t, table.SetValue(0, 0, "0.1"))
		require.NoError(t, table.SetValue(2, 1, "0.2"))

		err := table.SetValue(3, 0, "9")
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)
		err = table.SetValue(0, 2, "9")
		require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
	})

	t.Run("SetRowIncluded", func(t *testing.T) {
		require.NoError(t, table.SetRowIncluded(1, false))

		err := table.SetRowIncluded(5, false)
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)
	})

	t.Run("SetLabel", func(t *testing.T) {
		require.NoError(t, table.SetLabel(0, "wild type"))
		require.Equal(t, "wild type", table.Label(0))

		err := table.SetLabel(2, "x")
		require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
		require.Equal(t, "", table.Label(2))
	})
}

func TestFromValues(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := []float64{0.5, 1, 2, 5, 10}
		v := []float64{0.12, 0.2, 0.3, 0.42, 0.5}

		table, err := FromValues(s, [][]float64{v})
		require.NoError(t, err)

		series := table.Prepare(NewSelection(1))
		require.Len(t, series, 1)
		require.Len(t, series[0].Included, len(s))
		for i, obs := range series[0].Included {
			require.Equal(t, s[i], obs.S)
			require.Equal(t, v[i], obs.V)
			require.Equal(t, i, obs.Row)
		}
	})

	t.Run("MismatchedColumnLength", func(t *testing.T) {
		_, err := FromValues([]float64{1, 2, 3}, [][]float64{{0.1, 0.2}})
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := FromValues(nil, [][]float64{{1}})
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)

		_, err = FromValues([]float64{1}, nil)
		require.ErrorIs(t, err, errs.ErrInvalidDimensions)
	})
}

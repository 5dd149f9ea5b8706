package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Solver-shaped test target mirroring how fit.Engine consumes this package.
type solverConfig struct {
	MaxIterations int
	Tolerance     float64
	Label         string
	LastCall      string
}

func (c *solverConfig) SetMaxIterations(n int) error {
	if n <= 0 {
		return errors.New("max iterations must be positive")
	}
	c.MaxIterations = n
	c.LastCall = "SetMaxIterations"

	return nil
}

func (c *solverConfig) SetTolerance(tol float64) error {
	if tol <= 0 {
		return errors.New("tolerance must be positive")
	}
	c.Tolerance = tol
	c.LastCall = "SetTolerance"

	return nil
}

func (c *solverConfig) SetLabel(label string) {
	c.Label = label
	c.LastCall = "SetLabel"
}

func TestOption_New(t *testing.T) {
	config := &solverConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *solverConfig) error {
			return c.SetMaxIterations(200)
		})

		err := opt.apply(config)
		require.NoError(t, err)
		require.Equal(t, 200, config.MaxIterations)
		require.Equal(t, "SetMaxIterations", config.LastCall)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *solverConfig) error {
			return c.SetMaxIterations(0)
		})

		err := opt.apply(config)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
	})
}

func TestOption_NoError(t *testing.T) {
	config := &solverConfig{}

	t.Run("creates option from function without error", func(t *testing.T) {
		opt := NoError(func(c *solverConfig) {
			c.SetLabel("series A")
		})

		err := opt.apply(config)
		require.NoError(t, err)
		require.Equal(t, "series A", config.Label)
		require.Equal(t, "SetLabel", config.LastCall)
	})
}

func TestOption_Apply(t *testing.T) {
	config := &solverConfig{}

	t.Run("applies multiple options in order", func(t *testing.T) {
		opts := []Option[*solverConfig]{
			New(func(c *solverConfig) error { return c.SetMaxIterations(100) }),
			New(func(c *solverConfig) error { return c.SetTolerance(1e-8) }),
			NoError(func(c *solverConfig) { c.SetLabel("series A") }),
		}

		err := Apply(config, opts...)
		require.NoError(t, err)
		require.Equal(t, 100, config.MaxIterations)
		require.Equal(t, 1e-8, config.Tolerance)
		require.Equal(t, "series A", config.Label)
		require.Equal(t, "SetLabel", config.LastCall)
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		config := &solverConfig{}

		opts := []Option[*solverConfig]{
			New(func(c *solverConfig) error { return c.SetMaxIterations(50) }),
			New(func(c *solverConfig) error { return c.SetTolerance(-1) }),
			NoError(func(c *solverConfig) { c.SetLabel("should not be set") }),
		}

		err := Apply(config, opts...)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
		require.Equal(t, 50, config.MaxIterations)
		require.Equal(t, "", config.Label)
		require.Equal(t, "SetMaxIterations", config.LastCall)
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		config := &solverConfig{}
		err := Apply(config)
		require.NoError(t, err)
		require.Equal(t, 0, config.MaxIterations)
		require.Equal(t, "", config.Label)
	})
}

func TestOption_Integration(t *testing.T) {
	config := &solverConfig{}

	// Helper constructors mirroring the public WithXxx pattern.
	withMaxIterations := func(n int) Option[*solverConfig] {
		return New(func(c *solverConfig) error {
			return c.SetMaxIterations(n)
		})
	}

	withLabel := func(label string) Option[*solverConfig] {
		return NoError(func(c *solverConfig) {
			c.SetLabel(label)
		})
	}

	t.Run("works with helper functions", func(t *testing.T) {
		err := Apply(config,
			withMaxIterations(400),
			withLabel("integration"),
		)

		require.NoError(t, err)
		require.Equal(t, 400, config.MaxIterations)
		require.Equal(t, "integration", config.Label)
	})
}

func TestOption_GenericsWithDifferentTypes(t *testing.T) {
	t.Run("works with primitive types", func(t *testing.T) {
		var num int
		opt := NoError(func(n *int) {
			*n = 42
		})

		err := opt.apply(&num)
		require.NoError(t, err)
		require.Equal(t, 42, num)
	})
}

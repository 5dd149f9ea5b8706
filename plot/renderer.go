package plot

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/arloliu/mmfit/internal/options"
)

const (
	// DefaultWidth is the default chart width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default chart height in pixels.
	DefaultHeight = 600

	// DefaultCurveSamples is the default number of points used to sample a
	// fitted curve or regression line.
	DefaultCurveSamples = 100
)

// Renderer renders fit results as PNG charts. It holds rendering
// configuration only, so a single Renderer is safe for concurrent use.
type Renderer struct {
	width        int
	height       int
	curveSamples int
}

// Option represents a functional option for configuring the Renderer.
type Option = options.Option[*Renderer]

func (r *Renderer) setDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", width, height)
	}
	r.width = width
	r.height = height

	return nil
}

func (r *Renderer) setCurveSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("curve samples must be at least 2, got %d", n)
	}
	r.curveSamples = n

	return nil
}

// WithDimensions sets the pixel dimensions of rendered charts.
func WithDimensions(width, height int) Option {
	return options.New(func(r *Renderer) error {
		return r.setDimensions(width, height)
	})
}

// WithCurveSamples sets how many points sample each fitted curve. More
// samples give smoother curves at a slightly larger render cost.
func WithCurveSamples(n int) Option {
	return options.New(func(r *Renderer) error {
		return r.setCurveSamples(n)
	})
}

// NewRenderer creates a Renderer.
//
// Parameters:
//   - opts: Optional rendering configuration (dimensions, curve sampling)
//
// Returns:
//   - *Renderer: New renderer ready for use
//   - error: Configuration error if invalid options provided
func NewRenderer(opts ...Option) (*Renderer, error) {
	renderer := &Renderer{
		width:        DefaultWidth,
		height:       DefaultHeight,
		curveSamples: DefaultCurveSamples,
	}

	if err := options.Apply(renderer, opts...); err != nil {
		return nil, err
	}

	return renderer, nil
}

// linspace returns n evenly spaced samples over [from, to]. n is always at
// least 2, so both endpoints are included.
func linspace(from, to float64, n int) []float64 {
	xs := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		xs[i] = from + float64(i)*step
	}
	xs[n-1] = to

	return xs
}

// lineStyle is the stroke style for a fitted curve or regression line.
func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: 2.0,
	}
}

// dotStyle is a points-only style for observed data.
func dotStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    c,
	}
}

// legendLabel is the single-line legend entry for a fitted series.
func legendLabel(label string, rSquared float64) string {
	return fmt.Sprintf("Fit %s (R²=%.3f)", label, rSquared)
}

// namedSeries filters series down to the ones carrying a legend name.
func namedSeries(series []chart.Series) []chart.Series {
	named := make([]chart.Series, 0, len(series))
	for _, s := range series {
		if s.GetName() != "" {
			named = append(named, s)
		}
	}

	return named
}

// legendElements builds the chart elements for a legend listing only the
// named series. go-chart's Legend renders a blank row for every unnamed
// series, so the legend reads from a shadow chart holding the named ones.
func legendElements(series []chart.Series) []chart.Renderable {
	shadow := &chart.Chart{Series: namedSeries(series)}

	return []chart.Renderable{chart.Legend(shadow)}
}

// originLine is the bold axis line drawn through the origin of a
// Lineweaver-Burk chart.
func originLine() chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorBlack,
		StrokeWidth: 1.5,
	}
}

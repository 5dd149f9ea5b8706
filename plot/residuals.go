package plot

import (
	"bytes"
	"fmt"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/arloliu/mmfit/errs"
	"github.com/arloliu/mmfit/fit"
)

// residualTolerance is the half-width of the residual band, as a fraction
// of the predicted velocity.
const residualTolerance = 0.05

// Residuals renders one series' residual view: included residuals as dots
// around the zero line, excluded residuals at half opacity, and a dashed
// band marking ±5% of the predicted velocity.
//
// The chart carries no legend; the series label lives in the title.
func (r *Renderer) Residuals(result *fit.FitResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: residual chart", errs.ErrNoResults)
	}

	color := seriesColor(0)

	xs := make([]float64, len(result.Included))
	ys := make([]float64, len(result.Included))
	for i, obs := range result.Included {
		xs[i] = obs.S
		ys[i] = result.Residuals[i]
	}

	series := []chart.Series{
		bandSeries(result, 1),
		bandSeries(result, -1),
		chart.ContinuousSeries{XValues: xs, YValues: ys, Style: dotStyle(color)},
	}

	if len(result.Excluded) > 0 {
		exXs := make([]float64, len(result.Excluded))
		exYs := make([]float64, len(result.Excluded))
		for i, obs := range result.Excluded {
			exXs[i] = obs.S
			exYs[i] = result.ExcludedResiduals[i]
		}
		series = append(series, chart.ContinuousSeries{XValues: exXs, YValues: exYs, Style: dotStyle(faded(color))})
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Residuals: %s", result.Label),
		Width:  r.width,
		Height: r.height,
		XAxis:  chart.XAxis{Name: "Substrate concentration [S]"},
		YAxis: chart.YAxis{
			Name:           "Residual",
			GridLines:      []chart.GridLine{{Value: 0}},
			GridMajorStyle: chart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 0.5},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render residual chart: %w", err)
	}

	return buf.Bytes(), nil
}

// bandSeries builds one edge of the tolerance band (sign +1 for the upper
// edge, -1 for the lower), ordered by substrate concentration so the edge
// draws as a single polyline.
func bandSeries(result *fit.FitResult, sign float64) chart.Series {
	type bandPoint struct {
		s   float64
		tol float64
	}

	points := make([]bandPoint, len(result.Included))
	for i, obs := range result.Included {
		points[i] = bandPoint{s: obs.S, tol: sign * residualTolerance * result.Predicted[i]}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].s < points[j].s })

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.s
		ys[i] = p.tol
	}

	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor:     drawing.Color{R: 120, G: 120, B: 120, A: 255},
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{4.0, 4.0},
		},
	}
}

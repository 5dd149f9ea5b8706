package plot

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/mmfit/errs"
	"github.com/arloliu/mmfit/fit"
)

// AxisRange is an explicit chart viewport.
type AxisRange struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// LineweaverRange computes the Lineweaver-Burk viewport from the
// transformed observations (included and excluded) of every result plus
// the best nonlinear Km.
//
// The left edge prefers, in order: the most negative fitted x-intercept,
// the x-intercept implied by the best Km, and a small margin left of the
// data when all of it sits right of the origin; otherwise it stays at -1.
// The remaining edges pad the data by 20% (10% below for non-negative y
// data) and fall back to the unit viewport without data.
func LineweaverRange(results []*fit.LinearFitResult, best *fit.BestKm) AxisRange {
	var xs, ys, xIntercepts []float64
	for _, res := range results {
		for _, p := range res.Included {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		for _, p := range res.Excluded {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		xIntercepts = append(xIntercepts, res.XIntercept)
	}

	rng := AxisRange{MinX: -1.0, MaxX: 1.0, MinY: -0.1, MaxY: 1.0}

	switch {
	case len(xIntercepts) > 0 && floats.Min(xIntercepts) < 0:
		rng.MinX = floats.Min(xIntercepts) * 1.2
	case best != nil && best.Km > 0:
		rng.MinX = -1 / best.Km * 1.2
	case len(xs) > 0 && floats.Min(xs) >= 0:
		rng.MinX = -0.1 * floats.Max(xs)
	}

	if len(xs) > 0 {
		rng.MaxX = floats.Max(xs) * 1.2
	}

	if len(ys) > 0 {
		if minY := floats.Min(ys); minY < 0 {
			rng.MinY = minY * 1.2
		} else {
			rng.MinY = -0.1 * floats.Max(ys)
		}
		rng.MaxY = floats.Max(ys) * 1.2
	}

	// Degenerate spans still need a drawable viewport.
	if rng.MaxX <= rng.MinX {
		rng.MaxX = rng.MinX + 1
	}
	if rng.MaxY <= rng.MinY {
		rng.MaxY = rng.MinY + 1
	}

	return rng
}

// LineweaverBurk renders the double-reciprocal view: transformed
// observations as dots, excluded points at half opacity, each series'
// regression line extended through its x-intercept, and bold axes through
// the origin.
//
// best widens the viewport toward the x-intercept implied by the smallest
// nonlinear Km when no fitted x-intercept reaches left of the origin; nil
// is allowed. An empty result set returns errs.ErrNoResults.
func (r *Renderer) LineweaverBurk(results []*fit.LinearFitResult, best *fit.BestKm) ([]byte, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: Lineweaver-Burk chart", errs.ErrNoResults)
	}

	rng := LineweaverRange(results, best)

	var series []chart.Series
	for i, res := range results {
		color := seriesColor(i)

		maxX := 0.0
		for _, p := range res.Included {
			maxX = math.Max(maxX, p.X)
		}

		lineXs := linspace(res.XIntercept*1.1, maxX*1.2, r.curveSamples)
		lineYs := make([]float64, len(lineXs))
		for j, x := range lineXs {
			lineYs[j] = res.Estimate(x)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    legendLabel(res.Label, res.RSquared),
			XValues: lineXs,
			YValues: lineYs,
			Style:   lineStyle(color),
		})

		series = append(series, transformedSeries(res.Included, dotStyle(color)))
		if len(res.Excluded) > 0 {
			series = append(series, transformedSeries(res.Excluded, dotStyle(faded(color))))
		}
	}

	ch := chart.Chart{
		Title:  "Lineweaver-Burk",
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Name:           "1/[S]",
			Range:          &chart.ContinuousRange{Min: rng.MinX, Max: rng.MaxX},
			GridLines:      []chart.GridLine{{Value: 0}},
			GridMajorStyle: originLine(),
		},
		YAxis: chart.YAxis{
			Name:           "1/v",
			Range:          &chart.ContinuousRange{Min: rng.MinY, Max: rng.MaxY},
			GridLines:      []chart.GridLine{{Value: 0}},
			GridMajorStyle: originLine(),
		},
		Series: series,
	}
	ch.Elements = legendElements(series)

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render Lineweaver-Burk chart: %w", err)
	}

	return buf.Bytes(), nil
}

// transformedSeries converts double-reciprocal points to an unnamed
// scatter series.
func transformedSeries(points []fit.TransformedPoint, style chart.Style) chart.Series {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style}
}

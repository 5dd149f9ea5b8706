package plot

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/arloliu/mmfit/dataset"
	"github.com/arloliu/mmfit/errs"
	"github.com/arloliu/mmfit/fit"
)

// Kinetics renders the Michaelis-Menten view: observed velocities as dots,
// excluded observations at half opacity, and each series' fitted curve
// sampled from zero to 1.2x the largest observed substrate concentration.
//
// Results are colored in input order. An empty result set returns
// errs.ErrNoResults.
func (r *Renderer) Kinetics(results []*fit.FitResult) ([]byte, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: kinetics chart", errs.ErrNoResults)
	}

	maxS := 0.0
	for _, res := range results {
		for _, obs := range res.Included {
			maxS = math.Max(maxS, obs.S)
		}
		for _, obs := range res.Excluded {
			maxS = math.Max(maxS, obs.S)
		}
	}
	if maxS <= 0 {
		maxS = 1
	}

	xs := linspace(0, maxS*1.2, r.curveSamples)

	var series []chart.Series
	for i, res := range results {
		color := seriesColor(i)

		ys := make([]float64, len(xs))
		for j, x := range xs {
			ys[j] = res.Estimate(x)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    legendLabel(res.Label, res.RSquared),
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(color),
		})

		series = append(series, observationSeries(res.Included, dotStyle(color)))
		if len(res.Excluded) > 0 {
			series = append(series, observationSeries(res.Excluded, dotStyle(faded(color))))
		}
	}

	ch := chart.Chart{
		Title:  "Michaelis-Menten kinetics",
		Width:  r.width,
		Height: r.height,
		XAxis:  chart.XAxis{Name: "Substrate concentration [S]"},
		YAxis:  chart.YAxis{Name: "Velocity v"},
		Series: series,
	}
	ch.Elements = legendElements(series)

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render kinetics chart: %w", err)
	}

	return buf.Bytes(), nil
}

// observationSeries converts observations to an unnamed scatter series.
func observationSeries(obs []dataset.Observation, style chart.Style) chart.Series {
	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	for i, o := range obs {
		xs[i] = o.S
		ys[i] = o.V
	}

	return chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style}
}

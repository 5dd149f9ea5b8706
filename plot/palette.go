package plot

import "github.com/wcharczuk/go-chart/v2/drawing"

// set2Palette holds the eight qualitative colors assigned to series in
// column order, cycling when a table carries more series than colors.
var set2Palette = []drawing.Color{
	{R: 102, G: 194, B: 165, A: 255},
	{R: 252, G: 141, B: 98, A: 255},
	{R: 141, G: 160, B: 203, A: 255},
	{R: 231, G: 138, B: 195, A: 255},
	{R: 166, G: 216, B: 84, A: 255},
	{R: 255, G: 217, B: 47, A: 255},
	{R: 229, G: 196, B: 148, A: 255},
	{R: 179, G: 179, B: 179, A: 255},
}

// seriesColor returns the palette color for the i-th series.
func seriesColor(i int) drawing.Color {
	return set2Palette[i%len(set2Palette)]
}

// faded returns the color at half opacity, used for excluded observations.
func faded(c drawing.Color) drawing.Color {
	c.A = 128

	return c
}

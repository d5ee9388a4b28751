// Package charts renders dashboard chart data as SVG with go-chart.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/louisbranch/launchdash/internal/launch"
	"github.com/wcharczuk/go-chart/v2"
)

// Chart canvas sizes in pixels.
const (
	ProportionWidth   = 560
	ProportionHeight  = 420
	CorrelationWidth  = 860
	CorrelationHeight = 420
)

// ErrNoData reports a render request with nothing to draw. go-chart cannot
// draw empty series, so callers show an empty-state message instead.
var ErrNoData = errors.New("no chart data")

// Axes labels and bounds the correlation chart's axes.
type Axes struct {
	XName string
	YName string
	// Low and High bound the x axis, normally the selected payload range.
	Low  float64
	High float64
}

// Proportion writes slices as an SVG pie chart, one wedge per slice.
func Proportion(w io.Writer, slices []launch.Slice) error {
	values := make([]chart.Value, 0, len(slices))
	for _, slice := range slices {
		if slice.Count <= 0 {
			continue
		}
		values = append(values, chart.Value{Label: slice.Label, Value: float64(slice.Count)})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Width:  ProportionWidth,
		Height: ProportionHeight,
		Values: values,
	}
	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// Correlation writes points as an SVG scatter chart of payload mass against
// outcome. Points are grouped into one dot-only series per booster category,
// coloured from the default palette in first-appearance order.
func Correlation(w io.Writer, points []launch.Point, axes Axes) error {
	if len(points) == 0 {
		return ErrNoData
	}

	categories := launch.BoosterCategories(points)
	xs := make(map[string][]float64, len(categories))
	ys := make(map[string][]float64, len(categories))
	for _, p := range points {
		xs[p.BoosterCategory] = append(xs[p.BoosterCategory], p.PayloadMass)
		ys[p.BoosterCategory] = append(ys[p.BoosterCategory], float64(p.Outcome))
	}

	series := make([]chart.Series, 0, len(categories))
	for i, category := range categories {
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs[category],
			YValues: ys[category],
			Style:   pointStyle(i),
		})
	}

	low, high := xRange(axes.Low, axes.High, points)
	graph := chart.Chart{
		Width:      CorrelationWidth,
		Height:     CorrelationHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           axes.XName,
			Range:          &chart.ContinuousRange{Min: low, Max: high},
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  axes.YName,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: float64(launch.Failure), Label: "0"},
				{Value: float64(launch.Success), Label: "1"},
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}

func pointStyle(index int) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    chart.GetDefaultColor(index),
	}
}

// xRange returns a non-degenerate x range. Non-finite or collapsed bounds
// fall back to the extent of points, padded by one unit on each side.
func xRange(low, high float64, points []launch.Point) (float64, float64) {
	if isFinite(low) && isFinite(high) && high > low {
		return low, high
	}
	low, high = points[0].PayloadMass, points[0].PayloadMass
	for _, p := range points[1:] {
		low = math.Min(low, p.PayloadMass)
		high = math.Max(high, p.PayloadMass)
	}
	if high > low {
		return low, high
	}
	return low - 1, high + 1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

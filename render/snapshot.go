package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kielezo-org/kielezo/engine"
)

// ============================================================================
// SNAPSHOTS — headless PNG rendering of a chart instance
// ============================================================================
// Snapshots reuse the instance's config verbatim: the same palette slots,
// band point colors, axis bounds, and value formatter the page would show.
// ============================================================================

const (
	snapshotWidth  = 800
	snapshotHeight = 400
)

// Snapshot renders a chart instance to PNG.
// Line charts need at least two points; pies need a positive total.
func Snapshot(c *engine.Chart, w io.Writer) error {
	if len(c.Config.Data.Datasets) == 0 {
		return fmt.Errorf("surface %q: no dataset to snapshot", c.SurfaceID())
	}

	switch c.Config.Type {
	case "line":
		return snapshotLine(c, w)
	case "bar":
		return snapshotBar(c, w)
	case "pie", "doughnut":
		return snapshotPie(c, w)
	default:
		return fmt.Errorf("surface %q: no snapshot renderer for %q", c.SurfaceID(), c.Config.Type)
	}
}

func snapshotLine(c *engine.Chart, w io.Writer) error {
	ds := c.Config.Data.Datasets[0]
	if len(ds.Data) < 2 {
		return fmt.Errorf("surface %q: line snapshot needs at least 2 points, got %d",
			c.SurfaceID(), len(ds.Data))
	}

	xs := make([]float64, len(ds.Data))
	ticks := make([]chart.Tick, len(ds.Data))
	for i := range ds.Data {
		xs[i] = float64(i)
		label := ""
		if i < len(c.Config.Data.Labels) {
			label = c.Config.Data.Labels[i]
		}
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	stroke := hexColor(ds.BorderColor)
	style := chart.Style{
		StrokeColor: stroke,
		StrokeWidth: 3,
		DotWidth:    float64(ds.PointRadius),
		DotColor:    stroke,
	}
	if ds.Fill {
		style.FillColor = stroke.WithAlpha(48)
	}
	if len(ds.PointBackgroundColor) > 0 {
		points := ds.PointBackgroundColor
		style.DotColorProvider = func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			if index < len(points) {
				return hexColor(points[index])
			}
			return stroke
		}
	}

	graph := chart.Chart{
		Width:  snapshotWidth,
		Height: snapshotHeight,
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  yAxis(c),
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    ds.Label,
			Style:   style,
			XValues: xs,
			YValues: ds.Data,
		}},
	}
	return graph.Render(chart.PNG, w)
}

func snapshotBar(c *engine.Chart, w io.Writer) error {
	graph := chart.BarChart{
		Width:    snapshotWidth,
		Height:   snapshotHeight,
		BarWidth: 60,
		Bars:     sliceValues(c),
		YAxis:    yAxis(c),
	}
	return graph.Render(chart.PNG, w)
}

func snapshotPie(c *engine.Chart, w io.Writer) error {
	values := sliceValues(c)
	var total float64
	for _, v := range values {
		total += v.Value
	}
	if total <= 0 {
		return fmt.Errorf("surface %q: pie snapshot needs a positive total", c.SurfaceID())
	}

	if c.Config.Type == "doughnut" {
		graph := chart.DonutChart{
			Width:  snapshotHeight,
			Height: snapshotHeight,
			Values: values,
		}
		return graph.Render(chart.PNG, w)
	}
	graph := chart.PieChart{
		Width:  snapshotHeight,
		Height: snapshotHeight,
		Values: values,
	}
	return graph.Render(chart.PNG, w)
}

// sliceValues converts the first dataset into labeled, palette-colored
// slices or bars.
func sliceValues(c *engine.Chart) []chart.Value {
	ds := c.Config.Data.Datasets[0]
	labels := c.Config.Data.Labels

	values := make([]chart.Value, len(ds.Data))
	for i, v := range ds.Data {
		value := chart.Value{Value: v}
		if i < len(labels) {
			value.Label = labels[i]
		}
		if i < len(ds.BackgroundColor) {
			value.Style = chart.Style{FillColor: hexColor(ds.BackgroundColor[i])}
		}
		values[i] = value
	}
	return values
}

// yAxis carries the config's scale bounds and value formatter over to the
// snapshot axis.
func yAxis(c *engine.Chart) chart.YAxis {
	axis := chart.YAxis{}

	if format := c.Config.Options.FormatValue; format != nil {
		axis.ValueFormatter = func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return format(f)
			}
			return ""
		}
	}

	if scale, ok := c.Config.Options.Scales["y"]; ok && scale.Min != nil && scale.Max != nil {
		axis.Range = &chart.ContinuousRange{Min: *scale.Min, Max: *scale.Max}
	}
	return axis
}

func hexColor(s string) drawing.Color {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(s)
}

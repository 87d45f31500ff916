// Package charts turns aggregation summaries into chart specifications and
// rendered PNG images.
package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"wildfires-dashboard/internal/modules/wildfire/types"
)

const (
	chartWidth  = 640
	chartHeight = 480
)

// Spec is the serializable description of one chart, consumed by the JSON
// API. Labels and Values are index-aligned and in calendar month order.
type Spec struct {
	Type   string    `json:"type"` // "donut" or "bar"
	Title  string    `json:"title"`
	Unit   string    `json:"unit"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Total  float64   `json:"total"`
}

// DonutSpec describes the monthly-mean fire area donut for a summary.
func DonutSpec(s types.Summary, title string) Spec {
	labels, values := splitSeries(s.FireArea)
	return Spec{
		Type:   "donut",
		Title:  title,
		Unit:   "km²",
		Labels: labels,
		Values: values,
		Total:  s.TotalArea,
	}
}

// BarSpec describes the monthly-mean pixel count bar chart for a summary.
func BarSpec(s types.Summary, title string) Spec {
	labels, values := splitSeries(s.PixelCount)
	return Spec{
		Type:   "bar",
		Title:  title,
		Unit:   "pixels",
		Labels: labels,
		Values: values,
		Total:  s.TotalPixels,
	}
}

func splitSeries(series []types.MonthlyAverage) ([]string, []float64) {
	labels := make([]string, 0, len(series))
	values := make([]float64, 0, len(series))
	for _, e := range series {
		labels = append(labels, string(e.Month))
		values = append(values, e.Value)
	}
	return labels, values
}

// allZero reports whether a series has no positive value. go-chart cannot
// render a donut without a non-zero slice or a bar chart with a zero data
// range, so such series fall back to the same placeholder as empty ones.
func allZero(values []chart.Value) bool {
	for _, v := range values {
		if v.Value > 0 {
			return false
		}
	}
	return true
}

// RenderDonut writes the fire-area donut as a PNG. An empty or all-zero
// summary renders a single neutral "No data" slice instead of failing, so an
// empty-but-valid selection still shows a chart.
func RenderDonut(w io.Writer, s types.Summary) error {
	values := make([]chart.Value, 0, len(s.FireArea))
	for _, e := range s.FireArea {
		values = append(values, chart.Value{
			Value: e.Value,
			Label: fmt.Sprintf("%s %.2f km²", e.Month.Short(), e.Value),
		})
	}
	if allZero(values) {
		values = []chart.Value{{Value: 1, Label: "No data"}}
	}

	donut := chart.DonutChart{
		Title:  fmt.Sprintf("Total: %.2f km²", s.TotalArea),
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	if err := donut.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render donut: %w", err)
	}
	return nil
}

// RenderBar writes the pixel-count bar chart as a PNG, with the same
// "No data" placeholder policy as RenderDonut.
func RenderBar(w io.Writer, s types.Summary) error {
	bars := make([]chart.Value, 0, len(s.PixelCount))
	for _, e := range s.PixelCount {
		bars = append(bars, chart.Value{Value: e.Value, Label: string(e.Month.Short())})
	}
	if allZero(bars) {
		bars = []chart.Value{{Value: 0.001, Label: "No data"}}
	}

	bar := chart.BarChart{
		Title:    fmt.Sprintf("Total number of pixels: %.0f", s.TotalPixels),
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 30,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Pixel Count",
		},
	}
	if err := bar.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar: %w", err)
	}
	return nil
}

package types

import "wildfires-dashboard/internal/domain"

// MonthlyAverage is one entry of an aggregation result: the arithmetic mean
// of a metric over all records matching the selection for one month.
type MonthlyAverage struct {
	Month domain.Month `json:"month"`
	Value float64      `json:"value"`
}

// Summary is the chart-ready output for one region/year selection. The two
// sequences are in calendar month order and contain only months with at
// least one matching record.
type Summary struct {
	Region domain.Region `json:"region"`
	Year   int           `json:"year"`

	// FireArea holds monthly means of estimated fire area (km²);
	// TotalArea is the sum of those means, shown inside the donut hole.
	FireArea  []MonthlyAverage `json:"fireArea"`
	TotalArea float64          `json:"totalArea"`

	// PixelCount holds monthly means of the vegetation-fire pixel count,
	// rounded to whole pixels for display; TotalPixels is their sum.
	PixelCount  []MonthlyAverage `json:"pixelCount"`
	TotalPixels float64          `json:"totalPixels"`
}

// Empty reports whether the selection matched no records at all.
func (s Summary) Empty() bool {
	return len(s.FireArea) == 0 && len(s.PixelCount) == 0
}

// Package engine filters the wildfire dataset by region and year and
// aggregates the matching records into per-month averages.
package engine

import (
	"fmt"
	"math"

	"wildfires-dashboard/internal/domain"
	"wildfires-dashboard/internal/modules/wildfire/types"
)

// Aggregate computes the monthly summary for one region/year selection.
//
// The selection must come from the closed domain sets; anything else fails
// with a domain.ErrInvalidSelection wrap and no result. A valid selection
// that matches no records is not an error: it yields a Summary with two
// empty sequences.
//
// The function is pure. It never mutates ds, and its output is independent
// of the row order of ds.
func Aggregate(ds domain.Dataset, region domain.Region, year int) (types.Summary, error) {
	// Filter with the canonical code so a lowercase selector still matches
	// the records it validates against.
	region, err := domain.ParseRegion(string(region))
	if err != nil {
		return types.Summary{}, err
	}
	if err := domain.ValidYear(year); err != nil {
		return types.Summary{}, err
	}

	type bucket struct {
		area  float64
		count float64
		n     int
	}
	buckets := make(map[domain.Month]*bucket)
	for _, rec := range ds {
		if rec.Region != region || rec.Year != year {
			continue
		}
		b := buckets[rec.Month]
		if b == nil {
			b = &bucket{}
			buckets[rec.Month] = b
		}
		b.area += rec.EstimatedFireArea
		b.count += float64(rec.Count)
		b.n++
	}

	summary := types.Summary{Region: region, Year: year}
	for _, m := range domain.Months() {
		b, ok := buckets[m]
		if !ok {
			continue
		}
		meanArea := b.area / float64(b.n)
		meanCount := math.Round(b.count / float64(b.n))
		summary.FireArea = append(summary.FireArea, types.MonthlyAverage{Month: m, Value: meanArea})
		summary.PixelCount = append(summary.PixelCount, types.MonthlyAverage{Month: m, Value: meanCount})
		summary.TotalArea += meanArea
		summary.TotalPixels += meanCount
	}
	return summary, nil
}

// Titles returns the headings shown above the two charts for a selection.
func Titles(region domain.Region, year int) (pie string, bar string) {
	pie = fmt.Sprintf("%s: Monthly Average Estimated Fire Area in Year %d.", region, year)
	bar = fmt.Sprintf("%s: Monthly Average Count of Pixels for Presumed Vegetation Fires in Year %d.", region, year)
	return pie, bar
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection marks a region or year outside the closed domain sets.
// Callers populate controls from the same sets, so hitting this error means
// the request was hand-crafted or the caller has a bug.
var ErrInvalidSelection = errors.New("invalid selection")

// Region is one of the Australian state/territory codes in the dataset.
type Region string

const (
	RegionNSW Region = "NSW"
	RegionNT  Region = "NT"
	RegionQLD Region = "QLD"
	RegionSA  Region = "SA"
	RegionTAS Region = "TAS"
	RegionVIC Region = "VIC"
	RegionWA  Region = "WA"
)

// RegionOption pairs a region code with its display label, in UI order.
type RegionOption struct {
	Label string `json:"label"`
	Value Region `json:"value"`
}

var regionOptions = []RegionOption{
	{Label: "New South Wales", Value: RegionNSW},
	{Label: "Northern Territory", Value: RegionNT},
	{Label: "Queensland", Value: RegionQLD},
	{Label: "South Australia", Value: RegionSA},
	{Label: "Tasmania", Value: RegionTAS},
	{Label: "Victoria", Value: RegionVIC},
	{Label: "Western Australia", Value: RegionWA},
}

// Regions returns the closed region set in display order.
func Regions() []RegionOption {
	out := make([]RegionOption, len(regionOptions))
	copy(out, regionOptions)
	return out
}

// ParseRegion validates a raw region code against the closed set.
func ParseRegion(s string) (Region, error) {
	code := Region(strings.ToUpper(strings.TrimSpace(s)))
	for _, opt := range regionOptions {
		if opt.Value == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: unknown region %q", ErrInvalidSelection, s)
}

// Label returns the display name for the region, or the code itself if the
// region is not in the closed set.
func (r Region) Label() string {
	for _, opt := range regionOptions {
		if opt.Value == r {
			return opt.Label
		}
	}
	return string(r)
}

// Years covered by the dataset, inclusive.
const (
	YearMin = 2005
	YearMax = 2020
)

// Years returns the closed year set in ascending order.
func Years() []int {
	out := make([]int, 0, YearMax-YearMin+1)
	for y := YearMin; y <= YearMax; y++ {
		out = append(out, y)
	}
	return out
}

// ValidYear validates a year against the closed set.
func ValidYear(y int) error {
	if y < YearMin || y > YearMax {
		return fmt.Errorf("%w: year %d outside %d–%d", ErrInvalidSelection, y, YearMin, YearMax)
	}
	return nil
}

// Month is a canonical calendar month name ("January" … "December").
type Month string

var monthOrder = []Month{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months returns the twelve months in calendar order.
func Months() []Month {
	out := make([]Month, len(monthOrder))
	copy(out, monthOrder)
	return out
}

// ParseMonth normalizes a raw month name to canonical casing. Unknown names
// are rejected; the loader treats that as a malformed row.
func ParseMonth(s string) (Month, error) {
	trimmed := strings.TrimSpace(s)
	for _, m := range monthOrder {
		if strings.EqualFold(trimmed, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown month name %q", s)
}

// Ordinal returns the 1-based calendar position of the month, or 0 for a
// non-canonical value.
func (m Month) Ordinal() int {
	for i, name := range monthOrder {
		if name == m {
			return i + 1
		}
	}
	return 0
}

// Short returns the three-letter abbreviation used as a chart label.
func (m Month) Short() string {
	if len(m) < 3 {
		return string(m)
	}
	return string(m)[:3]
}

// Record is one row of the dataset after boundary coercion.
type Record struct {
	Region            Region  `json:"region"`
	Year              int     `json:"year"`
	Month             Month   `json:"month"`
	EstimatedFireArea float64 `json:"estimatedFireArea"`
	Count             int     `json:"count"`
}

// Dataset is the ordered, immutable-after-load sequence of records. It is
// constructed once at startup and passed explicitly to consumers; nothing
// mutates it afterwards.
type Dataset []Record

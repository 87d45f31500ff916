// Package domain models the Historical Wildfires dataset published for
// Australia (2005–2020).
//
// # Data Source
//
// Each row of the source CSV describes remote-sensing wildfire observations
// for one region and one month:
//
//	Region, Year, Month_name, Estimated_fire_area, Count
//
// Estimated_fire_area is the average monthly burned area in square
// kilometers; Count is the number of satellite pixels flagged as presumed
// vegetation fires, a proxy for fire frequency and extent. Additional
// columns (such as a numeric month index) may appear in source files and
// are ignored by the loader.
//
// # Closed Categories
//
// Region codes and years form closed sets. The seven region codes are the
// Australian states and territories present in the dataset (NSW, NT, QLD,
// SA, TAS, VIC, WA); years run 2005 through 2020 inclusive. The same sets
// populate the dashboard controls and validate incoming selections, so a
// selection outside them is a caller bug, reported as ErrInvalidSelection
// and never silently coerced.
//
// Month names are the twelve English calendar months. Source files are not
// consistent about casing, so ParseMonth normalizes to canonical title case
// at the load boundary; everything past the loader deals in canonical
// months only.
//
// # Multiplicity
//
// No field combination is unique. A region/year/month key may appear on
// several rows (data revisions), and aggregation must average over all
// matching rows rather than assume one row per key.
package domain

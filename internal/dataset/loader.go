// Package dataset loads the Historical Wildfires CSV into memory.
//
// Loading happens once at startup. Any malformed row, unknown region, or
// unknown month aborts the load: a partial dataset is never accepted.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"wildfires-dashboard/internal/domain"
)

// Column headers expected in the source CSV. Extra columns (e.g. a numeric
// month index) are ignored.
const (
	colRegion   = "Region"
	colYear     = "Year"
	colMonth    = "Month_name"
	colFireArea = "Estimated_fire_area"
	colCount    = "Count"
)

// Load reads and validates the CSV at path. The source files are
// ISO-8859-1 encoded, matching the published dataset.
func Load(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads ISO-8859-1 encoded CSV from r into a Dataset.
func Parse(r io.Reader) (domain.Dataset, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var ds domain.Dataset
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

// columnIndex maps the required columns to their positions in the header.
type columnIndex struct {
	region, year, month, fireArea, count int
}

func mapColumns(header []string) (columnIndex, error) {
	idx := columnIndex{region: -1, year: -1, month: -1, fireArea: -1, count: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case colRegion:
			idx.region = i
		case colYear:
			idx.year = i
		case colMonth:
			idx.month = i
		case colFireArea:
			idx.fireArea = i
		case colCount:
			idx.count = i
		}
	}
	for name, pos := range map[string]int{
		colRegion: idx.region, colYear: idx.year, colMonth: idx.month,
		colFireArea: idx.fireArea, colCount: idx.count,
	} {
		if pos < 0 {
			return columnIndex{}, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

func parseRow(row []string, cols columnIndex) (domain.Record, error) {
	max := cols.region
	for _, i := range []int{cols.year, cols.month, cols.fireArea, cols.count} {
		if i > max {
			max = i
		}
	}
	if len(row) <= max {
		return domain.Record{}, fmt.Errorf("expected at least %d fields, got %d", max+1, len(row))
	}

	region, err := domain.ParseRegion(row[cols.region])
	if err != nil {
		return domain.Record{}, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[cols.year]))
	if err != nil {
		return domain.Record{}, fmt.Errorf("parse year %q: %w", row[cols.year], err)
	}
	if err := domain.ValidYear(year); err != nil {
		return domain.Record{}, err
	}

	month, err := domain.ParseMonth(row[cols.month])
	if err != nil {
		return domain.Record{}, err
	}

	area, err := strconv.ParseFloat(strings.TrimSpace(row[cols.fireArea]), 64)
	if err != nil {
		return domain.Record{}, fmt.Errorf("parse fire area %q: %w", row[cols.fireArea], err)
	}
	if area < 0 {
		return domain.Record{}, fmt.Errorf("negative fire area %v", area)
	}

	count, err := strconv.Atoi(strings.TrimSpace(row[cols.count]))
	if err != nil {
		return domain.Record{}, fmt.Errorf("parse count %q: %w", row[cols.count], err)
	}
	if count < 0 {
		return domain.Record{}, fmt.Errorf("negative count %d", count)
	}

	return domain.Record{
		Region:            region,
		Year:              year,
		Month:             month,
		EstimatedFireArea: area,
		Count:             count,
	}, nil
}

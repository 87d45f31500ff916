package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wildfires-dashboard/internal/domain"
	"wildfires-dashboard/internal/modules/wildfire/views"
)

const recordsPageSize = 20

// parseSelection reads the region and year query parameters. Missing values
// fall back to the dashboard defaults (first region, latest year); present
// values must belong to the closed domain sets.
func parseSelection(r *http.Request) (domain.Region, int, error) {
	q := r.URL.Query()

	region := domain.Regions()[0].Value
	if s := q.Get("region"); s != "" {
		parsed, err := domain.ParseRegion(s)
		if err != nil {
			return "", 0, err
		}
		region = parsed
	}

	year := domain.YearMax
	if s := q.Get("year"); s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return "", 0, fmt.Errorf("%w: year %q is not a number", domain.ErrInvalidSelection, s)
		}
		if err := domain.ValidYear(n); err != nil {
			return "", 0, err
		}
		year = n
	}

	return region, year, nil
}

// parsePage returns the 1-based page number from the request (default 1, min 1).
func parsePage(r *http.Request) int {
	s := r.URL.Query().Get("page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// buildPageItems returns page numbers and ellipsis for the pagination bar.
func buildPageItems(totalPages, currentPage int) []views.PaginationItem {
	if totalPages <= 0 {
		return nil
	}
	const window = 2
	show := map[int]bool{1: true, totalPages: true}
	for p := currentPage - window; p <= currentPage+window; p++ {
		if p >= 1 && p <= totalPages {
			show[p] = true
		}
	}
	var items []views.PaginationItem
	prev := 0
	for p := 1; p <= totalPages; p++ {
		if !show[p] {
			continue
		}
		if prev != 0 && p > prev+1 {
			items = append(items, views.PaginationItem{Ellipsis: true})
		}
		items = append(items, views.PaginationItem{Page: p, Ellipsis: false})
		prev = p
	}
	return items
}

func chartURL(path string, region domain.Region, year int) string {
	return fmt.Sprintf("%s?region=%s&year=%d", path, region, year)
}

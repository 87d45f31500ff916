package controller

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"wildfires-dashboard/internal/domain"
	"wildfires-dashboard/internal/modules/wildfire/charts"
	"wildfires-dashboard/internal/modules/wildfire/engine"
	"wildfires-dashboard/internal/modules/wildfire/types"
	"wildfires-dashboard/internal/modules/wildfire/views"
	"wildfires-dashboard/internal/utils"
)

// aggregate runs the engine for the selection and records the outcome.
func (c *wildfireControllerImpl) aggregate(region domain.Region, year int) (types.Summary, error) {
	summary, err := engine.Aggregate(c.dataset, region, year)
	if err != nil {
		c.metrics.AggregateRequests.WithLabelValues("invalid").Inc()
		return types.Summary{}, err
	}
	if summary.Empty() {
		c.metrics.AggregateRequests.WithLabelValues("empty").Inc()
	} else {
		c.metrics.AggregateRequests.WithLabelValues("ok").Inc()
	}
	return summary, nil
}

func (c *wildfireControllerImpl) buildRecordsData(region domain.Region, year int, page int) (views.RecordsData, error) {
	total, err := c.repository.CountRecords(region, year)
	if err != nil {
		return views.RecordsData{}, err
	}
	totalPages := (total + recordsPageSize - 1) / recordsPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	offset := (page - 1) * recordsPageSize

	rows, err := c.repository.GetRecords(region, year, recordsPageSize, offset)
	if err != nil {
		return views.RecordsData{}, err
	}

	return views.RecordsData{
		Region:      region,
		Year:        year,
		Rows:        rows,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
		PageItems:   buildPageItems(totalPages, page),
	}, nil
}

func (c *wildfireControllerImpl) buildPanel(region domain.Region, year int, page int) (views.PanelData, error) {
	summary, err := c.aggregate(region, year)
	if err != nil {
		return views.PanelData{}, err
	}
	records, err := c.buildRecordsData(region, year, page)
	if err != nil {
		return views.PanelData{}, err
	}

	pieTitle, barTitle := engine.Titles(region, year)
	return views.PanelData{
		Region:        region,
		Year:          year,
		PieTitle:      pieTitle,
		BarTitle:      barTitle,
		FireAreaURL:   chartURL("/charts/fire-area.png", region, year),
		PixelCountURL: chartURL("/charts/pixel-count.png", region, year),
		NoData:        summary.Empty(),
		Records:       records,
	}, nil
}

func (c *wildfireControllerImpl) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	region, year, err := parseSelection(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	panel, err := c.buildPanel(region, year, 1)
	if err != nil {
		slog.Error("dashboard: build panel failed", "region", region, "year", year, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	data := views.DashboardData{
		Regions:        domain.Regions(),
		Years:          domain.Years(),
		SelectedRegion: region,
		SelectedYear:   year,
		Panel:          panel,
	}

	var buf bytes.Buffer
	if err := views.RenderDashboard(&buf, &data); err != nil {
		slog.Error("dashboard template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	utils.WriteHTML(w, http.StatusOK, buf.Bytes())
}

func (c *wildfireControllerImpl) handlePanelPartial(w http.ResponseWriter, r *http.Request) {
	region, year, err := parseSelection(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	panel, err := c.buildPanel(region, year, 1)
	if err != nil {
		slog.Error("panel: build failed", "region", region, "year", year, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load panel")
		return
	}

	var buf bytes.Buffer
	if err := views.RenderPanelPartial(&buf, &panel); err != nil {
		slog.Error("panel partial render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render")
		return
	}
	utils.WriteHTML(w, http.StatusOK, buf.Bytes())
}

func (c *wildfireControllerImpl) handleRecordsPartial(w http.ResponseWriter, r *http.Request) {
	region, year, err := parseSelection(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := c.buildRecordsData(region, year, parsePage(r))
	if err != nil {
		slog.Error("records: load failed", "region", region, "year", year, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load records")
		return
	}

	var buf bytes.Buffer
	if err := views.RenderRecordsPartial(&buf, &records); err != nil {
		slog.Error("records partial render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render")
		return
	}
	utils.WriteHTML(w, http.StatusOK, buf.Bytes())
}

func (c *wildfireControllerImpl) handleFireAreaChart(w http.ResponseWriter, r *http.Request) {
	c.handleChart(w, r, "fire_area", charts.RenderDonut)
}

func (c *wildfireControllerImpl) handlePixelCountChart(w http.ResponseWriter, r *http.Request) {
	c.handleChart(w, r, "pixel_count", charts.RenderBar)
}

func (c *wildfireControllerImpl) handleChart(w http.ResponseWriter, r *http.Request, name string, render func(io.Writer, types.Summary) error) {
	region, year, err := parseSelection(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := c.aggregate(region, year)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := render(&buf, summary); err != nil {
		c.metrics.ChartRenders.WithLabelValues(name, "error").Inc()
		slog.Error("chart render failed", "chart", name, "region", region, "year", year, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	c.metrics.ChartRenders.WithLabelValues(name, "success").Inc()
	c.metrics.ChartRenderTime.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("chart: write response failed", "chart", name, "error", err)
	}
}

func (c *wildfireControllerImpl) handleRegions(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, http.StatusOK, domain.Regions())
}

func (c *wildfireControllerImpl) handleYears(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, http.StatusOK, domain.Years())
}

type aggregateResponse struct {
	Summary types.Summary `json:"summary"`
	Donut   charts.Spec   `json:"donut"`
	Bar     charts.Spec   `json:"bar"`
}

func (c *wildfireControllerImpl) handleAggregates(w http.ResponseWriter, r *http.Request) {
	region, year, err := parseSelection(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := c.aggregate(region, year)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSelection) {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pieTitle, barTitle := engine.Titles(region, year)
	utils.WriteJSON(w, http.StatusOK, aggregateResponse{
		Summary: summary,
		Donut:   charts.DonutSpec(summary, pieTitle),
		Bar:     charts.BarSpec(summary, barTitle),
	})
}

type recordsResponse struct {
	Region     domain.Region   `json:"region"`
	Year       int             `json:"year"`
	Records    []domain.Record `json:"records"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

func (c *wildfireControllerImpl) handleRecords(w http.ResponseWriter, r *http.Request) {
	region, year, err := parseSelection(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := c.buildRecordsData(region, year, parsePage(r))
	if err != nil {
		slog.Error("records api: load failed", "region", region, "year", year, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load records")
		return
	}
	utils.WriteJSON(w, http.StatusOK, recordsResponse{
		Region:     region,
		Year:       year,
		Records:    records.Rows,
		Total:      records.Total,
		Page:       records.CurrentPage,
		TotalPages: records.TotalPages,
	})
}

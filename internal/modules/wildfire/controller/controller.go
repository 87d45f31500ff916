package controller

import (
	"net/http"

	"wildfires-dashboard/internal/domain"
	"wildfires-dashboard/internal/modules/wildfire/repository"
	"wildfires-dashboard/internal/observability"
)

type WildfireController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type wildfireControllerImpl struct {
	dataset    domain.Dataset
	repository repository.WildfireRepository
	metrics    *observability.Metrics
}

func NewWildfireController(ds domain.Dataset, repo repository.WildfireRepository, metrics *observability.Metrics) WildfireController {
	return &wildfireControllerImpl{dataset: ds, repository: repo, metrics: metrics}
}

func (c *wildfireControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", c.handleDashboard)
	mux.HandleFunc("GET /partials/panel", c.handlePanelPartial)
	mux.HandleFunc("GET /partials/records", c.handleRecordsPartial)
	mux.HandleFunc("GET /charts/fire-area.png", c.handleFireAreaChart)
	mux.HandleFunc("GET /charts/pixel-count.png", c.handlePixelCountChart)
	mux.HandleFunc("GET /api/v1/regions", c.handleRegions)
	mux.HandleFunc("GET /api/v1/years", c.handleYears)
	mux.HandleFunc("GET /api/v1/aggregates", c.handleAggregates)
	mux.HandleFunc("GET /api/v1/records", c.handleRecords)
}

package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wildfires-dashboard/internal/domain"
	"wildfires-dashboard/internal/modules/wildfire/views"
	"wildfires-dashboard/internal/observability"
)

type mockRepo struct {
	records    []domain.Record
	recordsErr error
	count      int
	countErr   error
}

func (m *mockRepo) CreateSchema() error { return nil }

func (m *mockRepo) InsertRecords(ds domain.Dataset) error { return nil }

func (m *mockRepo) GetRecords(region domain.Region, year, limit, offset int) ([]domain.Record, error) {
	return m.records, m.recordsErr
}

func (m *mockRepo) CountRecords(region domain.Region, year int) (int, error) {
	return m.count, m.countErr
}

func testDataset() domain.Dataset {
	return domain.Dataset{
		{Region: "NSW", Year: 2020, Month: "January", EstimatedFireArea: 10.0, Count: 100},
		{Region: "NSW", Year: 2020, Month: "January", EstimatedFireArea: 20.0, Count: 200},
		{Region: "NSW", Year: 2020, Month: "March", EstimatedFireArea: 6.0, Count: 30},
	}
}

func newTestController(repo *mockRepo) *wildfireControllerImpl {
	return NewWildfireController(testDataset(), repo, observability.NewMetricsForTesting()).(*wildfireControllerImpl)
}

func mustLoadTemplates(t *testing.T) {
	t.Helper()
	if err := views.LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
}

func Test_handleDashboard(t *testing.T) {
	t.Run("returns 404 when path is not /", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()

		ctrl.handleDashboard(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("returns 400 for a region outside the closed set", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/?region=ACT&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handleDashboard(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "invalid selection") {
			t.Errorf("body = %q; expected invalid selection", rec.Body.String())
		}
	})

	t.Run("renders HTML with defaults when no selection given", func(t *testing.T) {
		mustLoadTemplates(t)
		ctrl := newTestController(&mockRepo{count: 3, records: testDataset()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		ctrl.handleDashboard(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("Content-Type = %q; want text/html; charset=utf-8", ct)
		}
		body := rec.Body.String()
		// Defaults: first region, latest year.
		if !strings.Contains(body, `value="NSW" checked`) {
			t.Errorf("body missing default region selection")
		}
		if !strings.Contains(body, `<option value="2020" selected>`) {
			t.Errorf("body missing default year selection")
		}
	})

	t.Run("returns 500 when the repository fails", func(t *testing.T) {
		mustLoadTemplates(t)
		ctrl := newTestController(&mockRepo{countErr: errors.New("db error")})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		ctrl.handleDashboard(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}

func Test_handlePanelPartial(t *testing.T) {
	t.Run("renders chart titles for the selection", func(t *testing.T) {
		mustLoadTemplates(t)
		ctrl := newTestController(&mockRepo{count: 3, records: testDataset()})
		req := httptest.NewRequest(http.MethodGet, "/partials/panel?region=NSW&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handlePanelPartial(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "NSW: Monthly Average Estimated Fire Area in Year 2020.") {
			t.Errorf("body missing pie title; got %q", body)
		}
		if !strings.Contains(body, "/charts/pixel-count.png?region=NSW&amp;year=2020") {
			t.Errorf("body missing bar chart URL; got %q", body)
		}
	})

	t.Run("shows a no-data notice for an empty-but-valid selection", func(t *testing.T) {
		mustLoadTemplates(t)
		ctrl := newTestController(&mockRepo{count: 0})
		req := httptest.NewRequest(http.MethodGet, "/partials/panel?region=TAS&year=2007", nil)
		rec := httptest.NewRecorder()

		ctrl.handlePanelPartial(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "No records for TAS in 2007.") {
			t.Errorf("body missing no-data notice; got %q", rec.Body.String())
		}
	})

	t.Run("returns 400 for an out-of-range year", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/partials/panel?region=NSW&year=2021", nil)
		rec := httptest.NewRecorder()

		ctrl.handlePanelPartial(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func Test_handleRecordsPartial(t *testing.T) {
	mustLoadTemplates(t)
	ctrl := newTestController(&mockRepo{count: 45, records: testDataset()})
	req := httptest.NewRequest(http.MethodGet, "/partials/records?region=NSW&year=2020&page=2", nil)
	rec := httptest.NewRecorder()

	ctrl.handleRecordsPartial(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "45 rows") {
		t.Errorf("body missing row count; got %q", body)
	}
	if !strings.Contains(body, `<span class="current-page">2</span>`) {
		t.Errorf("body missing current page marker")
	}
}

func Test_handleChart(t *testing.T) {
	t.Run("returns a PNG for a valid selection", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/charts/fire-area.png?region=NSW&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handleFireAreaChart(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("Content-Type = %q; want image/png", ct)
		}
		if rec.Body.Len() == 0 {
			t.Error("body is empty; expected PNG bytes")
		}
	})

	t.Run("returns a placeholder PNG for an empty selection", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/charts/pixel-count.png?region=TAS&year=2007", nil)
		rec := httptest.NewRecorder()

		ctrl.handlePixelCountChart(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("returns 400 for an invalid region", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/charts/fire-area.png?region=XX&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handleFireAreaChart(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func Test_handleRegions(t *testing.T) {
	ctrl := newTestController(&mockRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/regions", nil)
	rec := httptest.NewRecorder()

	ctrl.handleRegions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	var got []domain.RegionOption
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 7 {
		t.Errorf("got %d regions; want 7", len(got))
	}
	if got[0].Value != "NSW" || got[0].Label != "New South Wales" {
		t.Errorf("first region = %+v; want NSW", got[0])
	}
}

func Test_handleYears(t *testing.T) {
	ctrl := newTestController(&mockRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/years", nil)
	rec := httptest.NewRecorder()

	ctrl.handleYears(rec, req)

	var got []int
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 16 || got[0] != 2005 || got[15] != 2020 {
		t.Errorf("years = %v; want 2005..2020", got)
	}
}

func Test_handleAggregates(t *testing.T) {
	t.Run("returns summary and chart specs", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/aggregates?region=NSW&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handleAggregates(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		var got aggregateResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		// January mean over 10.0 and 20.0 is 15.0.
		if len(got.Summary.FireArea) != 2 || got.Summary.FireArea[0].Value != 15.0 {
			t.Errorf("fire area = %+v; want January mean 15.0", got.Summary.FireArea)
		}
		if got.Donut.Type != "donut" || got.Bar.Type != "bar" {
			t.Errorf("spec types = %q/%q; want donut/bar", got.Donut.Type, got.Bar.Type)
		}
		if len(got.Donut.Labels) != 2 || got.Donut.Labels[0] != "January" {
			t.Errorf("donut labels = %v", got.Donut.Labels)
		}
	})

	t.Run("returns empty results for a valid selection with no data", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/aggregates?region=WA&year=2010", nil)
		rec := httptest.NewRecorder()

		ctrl.handleAggregates(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		var got aggregateResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got.Summary.FireArea) != 0 || len(got.Summary.PixelCount) != 0 {
			t.Errorf("summary = %+v; want empty", got.Summary)
		}
	})

	t.Run("returns 400 for an invalid year", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/aggregates?region=NSW&year=1900", nil)
		rec := httptest.NewRecorder()

		ctrl.handleAggregates(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func Test_handleRecords(t *testing.T) {
	t.Run("returns paginated records", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{count: 3, records: testDataset()})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records?region=NSW&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handleRecords(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		var got recordsResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Total != 3 || got.Page != 1 || got.TotalPages != 1 {
			t.Errorf("pagination = %+v; want total 3, page 1/1", got)
		}
		if len(got.Records) != 3 {
			t.Errorf("got %d records; want 3", len(got.Records))
		}
	})

	t.Run("returns 500 when the repository fails", func(t *testing.T) {
		ctrl := newTestController(&mockRepo{recordsErr: errors.New("db error"), count: 3})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records?region=NSW&year=2020", nil)
		rec := httptest.NewRecorder()

		ctrl.handleRecords(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}

package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"

	"wildfires-dashboard/internal/domain"
)

//go:embed templates
var viewsFS embed.FS

var dashboardTmpl *template.Template

// loadTemplatesFromFS loads dashboard templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	dashboardTmpl, err = template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates loads embedded dashboard templates. Call during startup
// before serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// PaginationItem is one entry in the pagination bar: either a page number or
// an ellipsis.
type PaginationItem struct {
	Page     int
	Ellipsis bool
}

// RecordsData is the view model for the raw-records partial.
type RecordsData struct {
	Region      domain.Region
	Year        int
	Rows        []domain.Record
	Total       int
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
	PageItems   []PaginationItem
}

// PanelData is the view model for the charts-and-records panel refreshed on
// every selection change.
type PanelData struct {
	Region        domain.Region
	Year          int
	PieTitle      string
	BarTitle      string
	FireAreaURL   string
	PixelCountURL string
	NoData        bool
	Records       RecordsData
}

// DashboardData is the view model for the full dashboard page.
type DashboardData struct {
	Regions        []domain.RegionOption
	Years          []int
	SelectedRegion domain.Region
	SelectedYear   int
	Panel          PanelData
}

func RenderDashboard(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "dashboard.html", data)
}

// RenderPanelPartial executes only the charts-and-records panel into w.
// Use for HTMX fragment refresh after a selection change.
func RenderPanelPartial(w io.Writer, data *PanelData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "partials/panel.html", data)
}

// RenderRecordsPartial executes only the records table into w.
// Use for HTMX fragment refresh when paging through records.
func RenderRecordsPartial(w io.Writer, data *RecordsData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "partials/records.html", data)
}

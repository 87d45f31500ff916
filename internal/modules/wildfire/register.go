package wildfire

import (
	"database/sql"
	"net/http"

	"wildfires-dashboard/internal/domain"
	"wildfires-dashboard/internal/modules/wildfire/controller"
	"wildfires-dashboard/internal/modules/wildfire/repository"
	"wildfires-dashboard/internal/observability"
)

// RegisterFeature indexes the dataset into the in-memory database and mounts
// all dashboard routes on the mux.
func RegisterFeature(mux *http.ServeMux, db *sql.DB, ds domain.Dataset, metrics *observability.Metrics) error {
	repo := repository.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		return err
	}
	if err := repo.InsertRecords(ds); err != nil {
		return err
	}

	ctrl := controller.NewWildfireController(ds, repo, metrics)
	ctrl.RegisterRoutes(mux)
	return nil
}

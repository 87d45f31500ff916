package repository

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"wildfires-dashboard/internal/domain"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/insert-record.sql
var insertRecordSQL string

//go:embed sql/get-records.sql
var getRecordsSQL string

//go:embed sql/count-records.sql
var countRecordsSQL string

// WildfireRepository indexes the loaded dataset for the record browser.
// It is backed by an in-memory SQLite database: nothing is persisted and
// nothing is written after the startup bulk insert.
type WildfireRepository interface {
	CreateSchema() error
	InsertRecords(ds domain.Dataset) error
	GetRecords(region domain.Region, year int, limit int, offset int) ([]domain.Record, error)
	CountRecords(region domain.Region, year int) (int, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) WildfireRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) CreateSchema() error {
	if _, err := r.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertRecords bulk-loads the dataset in a single transaction, preserving
// source row order via the rowid.
func (r *repositoryImpl) InsertRecords(ds domain.Dataset) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	stmt, err := tx.Prepare(insertRecordSQL)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("rollback insert", "error", rbErr)
		}
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			slog.Error("close insert statement", "error", err)
		}
	}()

	for _, rec := range ds {
		if _, err := stmt.Exec(string(rec.Region), rec.Year, string(rec.Month), rec.EstimatedFireArea, rec.Count); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("rollback insert", "error", rbErr)
			}
			return fmt.Errorf("insert record: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}

func (r *repositoryImpl) GetRecords(region domain.Region, year int, limit int, offset int) ([]domain.Record, error) {
	rows, err := r.db.Query(getRecordsSQL, string(region), year, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close records rows", "error", err)
		}
	}()

	var out []domain.Record
	for rows.Next() {
		var rec domain.Record
		var regionStr, monthStr string
		if err := rows.Scan(&regionStr, &rec.Year, &monthStr, &rec.EstimatedFireArea, &rec.Count); err != nil {
			return nil, err
		}
		rec.Region = domain.Region(regionStr)
		rec.Month = domain.Month(monthStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) CountRecords(region domain.Region, year int) (int, error) {
	var n int
	err := r.db.QueryRow(countRecordsSQL, string(region), year).Scan(&n)
	return n, err
}

package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.SafetyReport) error {
	query := `
		INSERT INTO safety_reports (
			id, user_id, type, severity, description, lat, lon, geometry, status,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			ST_SetSRID(ST_MakePoint($7, $6), 4326),
			$8, $9, $10
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.UserID, report.Type, report.Severity,
		report.Description, report.Lat, report.Lon,
		report.Status, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert safety report",
			zap.String("report_id", report.ID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyReport, error) {
	query := `
		SELECT id, user_id, type, severity, description, lat, lon, status,
		       created_at, updated_at
		FROM safety_reports
		WHERE id = $1
	`

	var report domain.SafetyReport
	err := r.db.GetContext(ctx, &report, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReportNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get report by ID",
			zap.String("id", id.String()),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &report, nil
}

// FindNearby возвращает pending/verified отчеты в радиусе maxDistance метров,
// новые инциденты первыми
func (r *reportRepository) FindNearby(ctx context.Context, lat, lon float64, maxDistance float64) ([]*domain.NearbyReport, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT
			s.id, s.type, s.severity, s.lat, s.lon,
			ST_Distance(s.geometry::geography, point.geom) AS distance
		FROM safety_reports s, point
		WHERE s.status = ANY($3)
		  AND ST_DWithin(s.geometry::geography, point.geom, $4)
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query,
		lon, lat, pq.Array(domain.EligibleReportStatuses), maxDistance)
	if err != nil {
		r.logger.Error("Failed to find nearby reports",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var reports []*domain.NearbyReport
	for rows.Next() {
		var report domain.NearbyReport

		err := rows.Scan(
			&report.ID, &report.Type, &report.Severity,
			&report.Lat, &report.Lon, &report.Distance,
		)
		if err != nil {
			// Частично прочитанный корпус отчетов не должен попасть в скоринг
			r.logger.Error("Failed to scan nearby report", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		reports = append(reports, &report)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration failed for nearby reports", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reports, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error {
	query := `
		UPDATE safety_reports
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		r.logger.Error("Failed to update report status",
			zap.String("id", id.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrReportNotFound
	}

	return nil
}

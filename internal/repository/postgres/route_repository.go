package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *routeRepository) Create(ctx context.Context, record *domain.RouteRecord) error {
	query := `
		INSERT INTO route_records (
			id, user_id, origin_lat, origin_lon, destination_lat, destination_lon,
			polyline, summary, distance_meters, distance_text,
			duration_seconds, duration_text,
			safety_score, lighting, police_presence, crime_rate,
			pedestrian_traffic, road_condition, community_reports,
			route_type, tags, saved, completed, feedback_score,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.UserID,
		record.Origin.Lat, record.Origin.Lon,
		record.Destination.Lat, record.Destination.Lon,
		record.Polyline, record.Summary,
		record.DistanceMeters, record.DistanceText,
		record.DurationSeconds, record.DurationText,
		record.SafetyScore,
		record.Factors.Lighting, record.Factors.PolicePresence,
		record.Factors.CrimeRate, record.Factors.PedestrianTraffic,
		record.Factors.RoadCondition, record.Factors.CommunityReports,
		record.RouteType, pq.Array(record.Tags),
		record.Saved, record.Completed, record.FeedbackScore,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert route record",
			zap.String("route_id", record.ID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RouteRecord, error) {
	query := `
		SELECT
			id, user_id, origin_lat, origin_lon, destination_lat, destination_lon,
			polyline, summary, distance_meters, distance_text,
			duration_seconds, duration_text,
			safety_score, lighting, police_presence, crime_rate,
			pedestrian_traffic, road_condition, community_reports,
			route_type, tags, saved, completed, feedback_score,
			created_at, updated_at
		FROM route_records
		WHERE id = $1
	`

	record, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID",
			zap.String("id", id.String()),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return record, nil
}

func (r *routeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.RouteRecord, error) {
	query := `
		SELECT
			id, user_id, origin_lat, origin_lon, destination_lat, destination_lon,
			polyline, summary, distance_meters, distance_text,
			duration_seconds, duration_text,
			safety_score, lighting, police_presence, crime_rate,
			pedestrian_traffic, road_condition, community_reports,
			route_type, tags, saved, completed, feedback_score,
			created_at, updated_at
		FROM route_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		r.logger.Error("Failed to list routes by user",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var records []*domain.RouteRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			r.logger.Error("Failed to scan route record", zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Patch применяет частичное обновление: только явно переданные поля
// попадают в SET. Пустой патч - no-op.
func (r *routeRepository) Patch(ctx context.Context, id uuid.UUID, patch *domain.RouteRecordPatch) error {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	args = append(args, id)

	if patch.Saved != nil {
		args = append(args, *patch.Saved)
		sets = append(sets, fmt.Sprintf("saved = $%d", len(args)))
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		sets = append(sets, fmt.Sprintf("completed = $%d", len(args)))
	}
	if patch.FeedbackScore != nil {
		args = append(args, *patch.FeedbackScore)
		sets = append(sets, fmt.Sprintf("feedback_score = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE route_records SET %s WHERE id = $1",
		strings.Join(sets, ", "),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to patch route record",
			zap.String("id", id.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *routeRepository) scanRecord(row rowScanner) (*domain.RouteRecord, error) {
	var record domain.RouteRecord
	var tags pq.StringArray

	err := row.Scan(
		&record.ID, &record.UserID,
		&record.Origin.Lat, &record.Origin.Lon,
		&record.Destination.Lat, &record.Destination.Lon,
		&record.Polyline, &record.Summary,
		&record.DistanceMeters, &record.DistanceText,
		&record.DurationSeconds, &record.DurationText,
		&record.SafetyScore,
		&record.Factors.Lighting, &record.Factors.PolicePresence,
		&record.Factors.CrimeRate, &record.Factors.PedestrianTraffic,
		&record.Factors.RoadCondition, &record.Factors.CommunityReports,
		&record.RouteType, &tags,
		&record.Saved, &record.Completed, &record.FeedbackScore,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Tags = tags
	return &record, nil
}

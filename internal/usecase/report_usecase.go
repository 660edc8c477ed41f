package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/utils"
	"go.uber.org/zap"
)

const defaultNearbyRadius = 500.0 // meters

// ReportUseCase - use case отчетов сообщества о безопасности
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewReportUseCase создает новый ReportUseCase
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// CreateReport сохраняет новый отчет и публикует событие подписчикам.
// Публикация fire-and-forget: сбой стрима логируется, но не откатывает отчет.
func (uc *ReportUseCase) CreateReport(ctx context.Context, userID uuid.UUID, reportType domain.ReportType, severity domain.ReportSeverity, description string, lat, lon float64) (*domain.SafetyReport, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !domain.ValidReportType(reportType) {
		return nil, errors.ErrInvalidReportType
	}

	now := time.Now().UTC()
	report := &domain.SafetyReport{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        reportType,
		Severity:    severity,
		Description: description,
		Lat:         lat,
		Lon:         lon,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	event := domain.ReportCreatedEvent{
		ReportID:  report.ID,
		Type:      report.Type,
		Severity:  report.Severity,
		Lat:       report.Lat,
		Lon:       report.Lon,
		CreatedAt: report.CreatedAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamReportsCreated, event); err != nil {
		uc.logger.Warn("Failed to publish report created event",
			zap.String("report_id", report.ID.String()),
			zap.Error(err))
	}

	uc.logger.Info("Safety report created",
		zap.String("report_id", report.ID.String()),
		zap.String("type", string(report.Type)),
		zap.String("severity", string(report.Severity)))

	return report, nil
}

// GetNearbyReports возвращает действующие отчеты в радиусе от точки
func (uc *ReportUseCase) GetNearbyReports(ctx context.Context, lat, lon, radius float64) ([]*domain.NearbyReport, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if radius == 0 {
		radius = defaultNearbyRadius
	}
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRadius
	}

	return uc.reportRepo.FindNearby(ctx, lat, lon, radius)
}

// GetReport возвращает отчет по идентификатору
func (uc *ReportUseCase) GetReport(ctx context.Context, id uuid.UUID) (*domain.SafetyReport, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

// UpdateReportStatus переводит отчет в новый статус модерации
func (uc *ReportUseCase) UpdateReportStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.SafetyReport, error) {
	if err := uc.reportRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.reportRepo.GetByID(ctx, id)
}

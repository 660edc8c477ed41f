package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saferoute-service/internal/domain"
)

// ReportRepository - интерфейс гео-индекса отчетов о безопасности
type ReportRepository interface {
	// Create сохраняет новый отчет
	Create(ctx context.Context, report *domain.SafetyReport) error

	// GetByID возвращает отчет по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyReport, error)

	// FindNearby возвращает отчеты со статусом pending/verified в радиусе
	// maxDistance метров от точки, отсортированные по убыванию времени создания
	FindNearby(ctx context.Context, lat, lon float64, maxDistance float64) ([]*domain.NearbyReport, error)

	// UpdateStatus переводит отчет в новый статус модерации
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
}

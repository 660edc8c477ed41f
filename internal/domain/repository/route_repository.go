package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saferoute-service/internal/domain"
)

// RouteRepository - интерфейс хранилища сохраненных маршрутов
type RouteRepository interface {
	// Create сохраняет запись маршрута после скоринга
	Create(ctx context.Context, record *domain.RouteRecord) error

	// GetByID возвращает запись маршрута по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RouteRecord, error)

	// ListByUser возвращает маршруты пользователя, новые первыми
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.RouteRecord, error)

	// Patch применяет частичное обновление (save/feedback/completion)
	Patch(ctx context.Context, id uuid.UUID, patch *domain.RouteRecordPatch) error
}

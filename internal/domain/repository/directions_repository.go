package repository

import (
	"context"

	"github.com/saferoute-service/internal/domain"
)

// DirectionsRepository - интерфейс внешнего провайдера маршрутов.
// Провайдер авторитетен по геометрии и времени: сервис никогда не
// пересчитывает distance/duration самостоятельно.
type DirectionsRepository interface {
	// GetRoutes возвращает альтернативные маршруты между двумя точками
	GetRoutes(ctx context.Context, origin, destination domain.Point) ([]domain.RouteCandidate, error)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/scoring"
	"go.uber.org/zap"
)

const defaultRouteHistoryLimit = 20

// RouteUseCase - use case построения и оценки маршрутов
type RouteUseCase struct {
	directionsRepo repository.DirectionsRepository
	routeRepo      repository.RouteRepository
	cacheRepo      repository.CacheRepository
	engine         *scoring.Engine
	logger         *zap.Logger
	cacheTTL       time.Duration
}

// NewRouteUseCase создает новый RouteUseCase
func NewRouteUseCase(
	directionsRepo repository.DirectionsRepository,
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	engine *scoring.Engine,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		directionsRepo: directionsRepo,
		routeRepo:      routeRepo,
		cacheRepo:      cacheRepo,
		engine:         engine,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

// scoredCandidate - результат скоринга одной альтернативы до классификации
type scoredCandidate struct {
	candidate domain.RouteCandidate
	score     *domain.SafetyScore
}

// GetSafeRoutes запрашивает альтернативы у провайдера, оценивает каждую,
// классифицирует, ранжирует по предпочтению и сохраняет записи маршрутов
func (uc *RouteUseCase) GetSafeRoutes(ctx context.Context, userID uuid.UUID, origin, destination domain.Point, preference domain.RoutePreference) (*domain.SafeRoutesResult, error) {
	if !utils.ValidateCoordinates(origin.Lat, origin.Lon) ||
		!utils.ValidateCoordinates(destination.Lat, destination.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if preference == "" {
		preference = domain.PreferBalanced
	}
	if !domain.ValidPreference(preference) {
		return nil, errors.ErrInvalidPreference
	}

	// Кеш по паре точек и предпочтению
	cacheKey := routesCacheKey(origin, destination, preference)
	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var result domain.SafeRoutesResult
		if err := json.Unmarshal(cached, &result); err == nil {
			uc.logger.Debug("Routes served from cache", zap.String("key", cacheKey))
			return &result, nil
		}
		uc.logger.Warn("Failed to unmarshal cached routes", zap.String("key", cacheKey))
	}

	candidates, err := uc.directionsRepo.GetRoutes(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.ErrNoRoutesAvailable
	}

	scored, err := uc.scoreAlternatives(ctx, candidates)
	if err != nil {
		return nil, err
	}

	// Длительности всех альтернатив нужны классификатору для метки fastest
	durations := make([]int, len(scored))
	for i, s := range scored {
		durations[i] = s.candidate.DurationSeconds
	}

	cfg := uc.engine.Config()
	routes := make([]domain.ScoredRoute, 0, len(scored))
	for _, s := range scored {
		routeType, tags := cfg.Classify(s.score, durations, s.candidate.DurationSeconds, s.candidate.Index)
		routes = append(routes, domain.ScoredRoute{
			Candidate: s.candidate,
			Score:     *s.score,
			RouteType: routeType,
			Tags:      tags,
		})
	}

	ranked := cfg.Rank(routes, preference)

	records, err := uc.persistRoutes(ctx, userID, origin, destination, ranked)
	if err != nil {
		return nil, err
	}

	result := &domain.SafeRoutesResult{
		Preference: preference,
		Routes:     ranked,
		RecordIDs:  records,
	}

	if data, err := json.Marshal(result); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache routes", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return result, nil
}

// scoreAlternatives оценивает независимые альтернативы параллельно.
// Ошибка скоринга любой альтернативы отменяет весь запрос: частично
// оцененный набор не ранжируется.
func (uc *RouteUseCase) scoreAlternatives(ctx context.Context, candidates []domain.RouteCandidate) ([]scoredCandidate, error) {
	scored := make([]scoredCandidate, len(candidates))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, c domain.RouteCandidate) {
			defer wg.Done()

			score, err := uc.engine.Score(ctx, c.Polyline)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			scored[i] = scoredCandidate{candidate: c, score: score}
		}(i, candidate)
	}

	wg.Wait()

	if firstErr != nil {
		uc.logger.Error("Failed to score route alternatives", zap.Error(firstErr))
		return nil, firstErr
	}

	return scored, nil
}

// persistRoutes материализует оцененные альтернативы в записи маршрутов.
// Каждая запись - отдельная логическая вставка, транзакция не охватывает
// несколько маршрутов.
func (uc *RouteUseCase) persistRoutes(ctx context.Context, userID uuid.UUID, origin, destination domain.Point, routes []domain.ScoredRoute) ([]uuid.UUID, error) {
	now := time.Now().UTC()
	ids := make([]uuid.UUID, 0, len(routes))

	for _, route := range routes {
		record := &domain.RouteRecord{
			ID:              uuid.New(),
			UserID:          userID,
			Origin:          origin,
			Destination:     destination,
			Polyline:        route.Candidate.Polyline,
			Summary:         route.Candidate.Summary,
			DistanceMeters:  route.Candidate.DistanceMeters,
			DistanceText:    route.Candidate.DistanceText,
			DurationSeconds: route.Candidate.DurationSeconds,
			DurationText:    route.Candidate.DurationText,
			SafetyScore:     route.Score.Overall,
			Factors:         route.Score.Factors,
			RouteType:       route.RouteType,
			Tags:            route.Tags,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := uc.routeRepo.Create(ctx, record); err != nil {
			return nil, err
		}
		ids = append(ids, record.ID)
	}

	return ids, nil
}

// GetRoute возвращает сохраненный маршрут
func (uc *RouteUseCase) GetRoute(ctx context.Context, id uuid.UUID) (*domain.RouteRecord, error) {
	return uc.routeRepo.GetByID(ctx, id)
}

// ListRoutes возвращает историю маршрутов пользователя
func (uc *RouteUseCase) ListRoutes(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.RouteRecord, error) {
	if limit <= 0 {
		limit = defaultRouteHistoryLimit
	}
	return uc.routeRepo.ListByUser(ctx, userID, limit)
}

// PatchRoute применяет частичное обновление записи маршрута
func (uc *RouteUseCase) PatchRoute(ctx context.Context, id uuid.UUID, patch *domain.RouteRecordPatch) (*domain.RouteRecord, error) {
	if err := uc.routeRepo.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	return uc.routeRepo.GetByID(ctx, id)
}

func routesCacheKey(origin, destination domain.Point, preference domain.RoutePreference) string {
	return fmt.Sprintf("routes:%.5f:%.5f:%.5f:%.5f:%s",
		origin.Lat, origin.Lon, destination.Lat, destination.Lon, preference)
}

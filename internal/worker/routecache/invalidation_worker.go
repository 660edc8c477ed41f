package routecache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/worker"
	"go.uber.org/zap"
)

const routesKeyPrefix = "routes:"

// InvalidationWorker сбрасывает закешированные результаты скоринга,
// когда рядом с ними появляется новый отчет о безопасности. Без этого
// кеш продолжал бы отдавать оценку, не учитывающую свежий инцидент,
// до истечения TTL.
type InvalidationWorker struct {
	*worker.BaseWorker
	streamRepo       repository.StreamRepository
	cacheRepo        repository.CacheRepository
	consumerName     string
	invalidateRadius float64 // meters
}

// NewInvalidationWorker создает новый InvalidationWorker
func NewInvalidationWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	invalidateRadius float64,
	logger *zap.Logger,
) *InvalidationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &InvalidationWorker{
		BaseWorker:       worker.NewBaseWorker("route-cache-invalidation", consumerGroup, logger),
		streamRepo:       streamRepo,
		cacheRepo:        cacheRepo,
		consumerName:     consumerName,
		invalidateRadius: invalidateRadius,
	}
}

// Start запускает воркер
func (w *InvalidationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting route cache invalidation worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Float64("invalidate_radius", w.invalidateRadius))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamReportsCreated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamReportsCreated, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		logger.Error("Failed to start stream consumer", zap.Error(err))
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}

			if err := w.handleMessage(ctx, msg); err != nil {
				logger.Error("Failed to handle report event",
					zap.String("message_id", msg.ID),
					zap.Error(err))
				// Сообщение не подтверждаем - будет перечитано
				continue
			}

			if err := w.streamRepo.AckMessage(ctx, domain.StreamReportsCreated, w.ConsumerGroup(), msg.ID); err != nil {
				logger.Error("Failed to ack message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

// handleMessage разбирает событие и инвалидирует затронутые ключи
func (w *InvalidationWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) error {
	var event domain.ReportCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return fmt.Errorf("failed to unmarshal report event: %w", err)
	}

	return w.invalidateNearby(ctx, event)
}

// invalidateNearby удаляет закешированные маршруты, у которых начало или
// конец лежит в радиусе invalidateRadius от нового отчета. Ключ кеша
// кодирует обе точки, поэтому коридор маршрута оценивается по его концам;
// маршрут, лишь проходящий рядом серединой, доживет до конца TTL.
func (w *InvalidationWorker) invalidateNearby(ctx context.Context, event domain.ReportCreatedEvent) error {
	logger := w.Logger()

	keys, err := w.cacheRepo.Keys(ctx, routesKeyPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to list cached route keys: %w", err)
	}

	invalidated := 0
	for _, key := range keys {
		originLat, originLon, destLat, destLon, ok := parseRoutesKey(key)
		if !ok {
			logger.Warn("Skipping unparseable cache key", zap.String("key", key))
			continue
		}

		originDist := utils.HaversineDistance(event.Lat, event.Lon, originLat, originLon)
		destDist := utils.HaversineDistance(event.Lat, event.Lon, destLat, destLon)
		if originDist > w.invalidateRadius && destDist > w.invalidateRadius {
			continue
		}

		if err := w.cacheRepo.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete cache key %s: %w", key, err)
		}
		invalidated++
	}

	if invalidated > 0 {
		logger.Info("Route cache invalidated by new report",
			zap.String("report_id", event.ReportID.String()),
			zap.String("report_type", string(event.Type)),
			zap.Int("keys", invalidated))
	}

	return nil
}

// parseRoutesKey разбирает ключ вида routes:olat:olon:dlat:dlon:preference
func parseRoutesKey(key string) (originLat, originLon, destLat, destLon float64, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 6 || parts[0] != "routes" {
		return 0, 0, 0, 0, false
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		var v float64
		if _, err := fmt.Sscanf(parts[i+1], "%f", &v); err != nil {
			return 0, 0, 0, 0, false
		}
		coords[i] = v
	}

	return coords[0], coords[1], coords[2], coords[3], true
}

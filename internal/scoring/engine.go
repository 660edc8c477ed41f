package scoring

import (
	"context"
	"math"
	"sync"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/polyline"
	"go.uber.org/zap"
)

// ReportIndex is the geospatial store the engine queries, one call per
// sample point. Only pending/verified reports are returned.
type ReportIndex interface {
	FindNearby(ctx context.Context, lat, lon float64, maxDistance float64) ([]*domain.NearbyReport, error)
}

// Engine computes a bounded multi-factor safety score for a route polyline.
type Engine struct {
	index  ReportIndex
	config Config
	logger *zap.Logger
}

// NewEngine creates a scoring engine with the given policy.
func NewEngine(index ReportIndex, config Config, logger *zap.Logger) *Engine {
	return &Engine{
		index:  index,
		config: config,
		logger: logger,
	}
}

// Config returns the policy the engine was constructed with.
func (e *Engine) Config() Config {
	return e.config
}

// Score decodes and samples the polyline, queries the report index around
// every sample point and folds the per-query mean impacts into the
// communityReports factor, then clamps all factors to [0,10] and derives the
// weighted overall score.
//
// A failed index query aborts the whole route: a partially observed corpus
// must not be scored as if the missing reports did not exist. A cancelled
// context surfaces as ErrScoringTimeout and no partial score is returned.
func (e *Engine) Score(ctx context.Context, encodedPolyline string) (*domain.SafetyScore, error) {
	points, err := polyline.Decode(encodedPolyline)
	if err != nil {
		return nil, err
	}

	samples := SamplePoints(points, e.config.SampleStride)

	// A degenerate polyline is scored as a feature-less average route:
	// the unmodified priors and their weighted overall.
	delta, err := e.communityDelta(ctx, samples)
	if err != nil {
		return nil, err
	}

	factors := e.config.FactorPriors
	factors.CommunityReports += delta
	clampFactors(&factors)

	score := &domain.SafetyScore{
		Overall: e.Overall(factors),
		Factors: factors,
	}

	e.logger.Debug("Route scored",
		zap.Int("points", len(points)),
		zap.Int("samples", len(samples)),
		zap.Float64("community_delta", delta),
		zap.Float64("overall", score.Overall))

	return score, nil
}

// communityDelta issues one proximity query per sample with bounded
// parallelism and folds the results. Each query with at least one report
// contributes its mean impact, which bounds how much a single dense cluster
// at one sample can swing the score at the cost of under-weighting areas
// with many reports close together. Addition is commutative, so completion
// order of the queries does not affect the result.
func (e *Engine) communityDelta(ctx context.Context, samples []domain.Point) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	parallelism := e.config.MaxParallelism
	if parallelism < 1 {
		parallelism = 1
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		delta    float64
		firstErr error
	)
	sem := make(chan struct{}, parallelism)

	for _, sample := range samples {
		wg.Add(1)
		sem <- struct{}{}

		go func(p domain.Point) {
			defer wg.Done()
			defer func() { <-sem }()

			mu.Lock()
			aborted := firstErr != nil
			mu.Unlock()
			if aborted {
				return
			}

			reports, err := e.index.FindNearby(ctx, p.Lat, p.Lon, e.config.QueryRadius)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			if len(reports) == 0 {
				return
			}

			var sum float64
			for _, r := range reports {
				sum += e.config.Impact(r.Type, r.Severity)
			}
			mean := sum / float64(len(reports))

			mu.Lock()
			delta += mean
			mu.Unlock()
		}(sample)
	}

	wg.Wait()

	if firstErr != nil {
		if ctx.Err() != nil {
			return 0, errors.ErrScoringTimeout
		}
		return 0, firstErr
	}
	if ctx.Err() != nil {
		return 0, errors.ErrScoringTimeout
	}

	return delta, nil
}

// Overall derives the weighted overall score from a FactorSet, rounded to
// one decimal place. It is never stored independently of the factors.
func (e *Engine) Overall(factors domain.FactorSet) float64 {
	w := e.config.FactorWeights
	overall := factors.Lighting*w.Lighting +
		factors.PolicePresence*w.PolicePresence +
		factors.CrimeRate*w.CrimeRate +
		factors.PedestrianTraffic*w.PedestrianTraffic +
		factors.RoadCondition*w.RoadCondition +
		factors.CommunityReports*w.CommunityReports

	return math.Round(overall*10) / 10
}

func clampFactors(f *domain.FactorSet) {
	f.Lighting = clamp(f.Lighting)
	f.PolicePresence = clamp(f.PolicePresence)
	f.CrimeRate = clamp(f.CrimeRate)
	f.PedestrianTraffic = clamp(f.PedestrianTraffic)
	f.RoadCondition = clamp(f.RoadCondition)
	f.CommunityReports = clamp(f.CommunityReports)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

package scoring

import (
	"github.com/saferoute-service/internal/domain"
)

// SamplePoints keeps every stride-th point of a decoded polyline to bound the
// number of proximity queries per route. The first point is always included;
// the last one is not guaranteed. The stride is a policy constant, not derived
// from actual inter-point distance: on typical urban-arterial geometry it
// lands roughly every 500m.
func SamplePoints(points []domain.Point, stride int) []domain.Point {
	if len(points) == 0 {
		return nil
	}
	if stride <= 1 {
		return points
	}

	sampled := make([]domain.Point, 0, len(points)/stride+1)
	for i := 0; i < len(points); i += stride {
		sampled = append(sampled, points[i])
	}
	return sampled
}

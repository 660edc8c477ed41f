package scoring

import (
	"github.com/saferoute-service/internal/domain"
)

// Tag thresholds on individual factors. Tags are evaluated independently,
// multiple may apply to the same route.
const (
	wellLitThreshold      = 7.0
	policePatrolThreshold = 7.0
	highTrafficThreshold  = 6.0
	mainRoadsThreshold    = 7.0
)

// Classify assigns the route type and descriptive tags for one alternative.
//
// The default type is balanced. Alternative 0 is promoted to safest when its
// overall score reaches the configured threshold. Any alternative whose
// duration equals the minimum among its siblings is labeled fastest; ties are
// labeled independently, there is no secondary tie-break. Classification is
// idempotent per route, not a global single-winner selection.
func (c *Config) Classify(score *domain.SafetyScore, siblingDurations []int, myDuration, myIndex int) (domain.RouteType, []string) {
	routeType := domain.RouteBalanced

	if myIndex == 0 && score.Overall >= c.SafestScoreThreshold {
		routeType = domain.RouteSafest
	}

	if len(siblingDurations) > 0 {
		min := siblingDurations[0]
		for _, d := range siblingDurations[1:] {
			if d < min {
				min = d
			}
		}
		if myDuration == min {
			routeType = domain.RouteFastest
		}
	}

	tags := make([]string, 0, 4)
	if score.Factors.Lighting >= wellLitThreshold {
		tags = append(tags, "Well-Lit")
	}
	if score.Factors.PolicePresence >= policePatrolThreshold {
		tags = append(tags, "Police Patrolled")
	}
	if score.Factors.PedestrianTraffic >= highTrafficThreshold {
		tags = append(tags, "High Traffic")
	}
	if score.Factors.RoadCondition >= mainRoadsThreshold {
		tags = append(tags, "Main Roads")
	}

	return routeType, tags
}

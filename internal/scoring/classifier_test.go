package scoring_test

import (
	"testing"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func scoreWith(overall float64, factors domain.FactorSet) *domain.SafetyScore {
	return &domain.SafetyScore{Overall: overall, Factors: factors}
}

func TestClassify(t *testing.T) {
	cfg := scoring.DefaultConfig()
	lowFactors := domain.FactorSet{
		Lighting:          3,
		PolicePresence:    3,
		CrimeRate:         3,
		PedestrianTraffic: 3,
		RoadCondition:     3,
		CommunityReports:  3,
	}

	t.Run("balanced by default", func(t *testing.T) {
		routeType, _ := cfg.Classify(scoreWith(6.5, lowFactors), []int{500, 400}, 500, 0)
		assert.Equal(t, domain.RouteBalanced, routeType)
	})

	t.Run("first alternative promoted to safest", func(t *testing.T) {
		routeType, _ := cfg.Classify(scoreWith(8.2, lowFactors), []int{500, 400}, 500, 0)
		assert.Equal(t, domain.RouteSafest, routeType)
	})

	t.Run("high score on later alternative stays balanced", func(t *testing.T) {
		routeType, _ := cfg.Classify(scoreWith(9.0, lowFactors), []int{400, 500}, 500, 1)
		assert.Equal(t, domain.RouteBalanced, routeType)
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		routeType, _ := cfg.Classify(scoreWith(8.0, lowFactors), []int{500, 400}, 500, 0)
		assert.Equal(t, domain.RouteSafest, routeType)
	})

	t.Run("minimum duration labeled fastest", func(t *testing.T) {
		routeType, _ := cfg.Classify(scoreWith(6.5, lowFactors), []int{600, 400, 500}, 400, 1)
		assert.Equal(t, domain.RouteFastest, routeType)
	})

	t.Run("duration ties labeled independently", func(t *testing.T) {
		durations := []int{500, 500, 600}

		first, _ := cfg.Classify(scoreWith(6.5, lowFactors), durations, 500, 0)
		second, _ := cfg.Classify(scoreWith(6.5, lowFactors), durations, 500, 1)
		third, _ := cfg.Classify(scoreWith(6.5, lowFactors), durations, 600, 2)

		assert.Equal(t, domain.RouteFastest, first)
		assert.Equal(t, domain.RouteFastest, second)
		assert.Equal(t, domain.RouteBalanced, third)
	})

	t.Run("fastest overrides safest promotion", func(t *testing.T) {
		routeType, _ := cfg.Classify(scoreWith(8.5, lowFactors), []int{400, 500}, 400, 0)
		assert.Equal(t, domain.RouteFastest, routeType)
	})

	t.Run("all tags at high factors", func(t *testing.T) {
		_, tags := cfg.Classify(scoreWith(8.0, domain.FactorSet{
			Lighting:          7,
			PolicePresence:    7,
			PedestrianTraffic: 6,
			RoadCondition:     7,
		}), []int{400, 500}, 500, 1)

		assert.Equal(t, []string{"Well-Lit", "Police Patrolled", "High Traffic", "Main Roads"}, tags)
	})

	t.Run("no tags below thresholds", func(t *testing.T) {
		_, tags := cfg.Classify(scoreWith(6.0, domain.FactorSet{
			Lighting:          6.9,
			PolicePresence:    6.9,
			PedestrianTraffic: 5.9,
			RoadCondition:     6.9,
		}), []int{400, 500}, 500, 1)

		assert.Empty(t, tags)
	})

	t.Run("tags independent of route type", func(t *testing.T) {
		factors := domain.FactorSet{Lighting: 8}

		fastType, fastTags := cfg.Classify(scoreWith(5.0, factors), []int{400}, 400, 0)
		balType, balTags := cfg.Classify(scoreWith(5.0, factors), []int{400, 300}, 400, 1)

		assert.Equal(t, domain.RouteFastest, fastType)
		assert.Equal(t, domain.RouteBalanced, balType)
		assert.Equal(t, fastTags, balTags)
	})
}

package scoring_test

import (
	"testing"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredRoute(index int, overall float64, durationSeconds int) domain.ScoredRoute {
	return domain.ScoredRoute{
		Candidate: domain.RouteCandidate{
			Index:           index,
			DurationSeconds: durationSeconds,
		},
		Score: domain.SafetyScore{Overall: overall},
	}
}

func indexOrder(routes []domain.ScoredRoute) []int {
	order := make([]int, len(routes))
	for i, r := range routes {
		order[i] = r.Candidate.Index
	}
	return order
}

func TestRank(t *testing.T) {
	cfg := scoring.DefaultConfig()

	t.Run("safest by descending score", func(t *testing.T) {
		ranked := cfg.Rank([]domain.ScoredRoute{
			scoredRoute(0, 6.5, 400),
			scoredRoute(1, 8.1, 700),
			scoredRoute(2, 7.2, 500),
		}, domain.PreferSafest)

		assert.Equal(t, []int{1, 2, 0}, indexOrder(ranked))
	})

	t.Run("safest ties keep provider order", func(t *testing.T) {
		ranked := cfg.Rank([]domain.ScoredRoute{
			scoredRoute(0, 7.0, 400),
			scoredRoute(1, 7.0, 700),
			scoredRoute(2, 8.0, 500),
		}, domain.PreferSafest)

		assert.Equal(t, []int{2, 0, 1}, indexOrder(ranked))
	})

	t.Run("fastest by ascending duration with stable ties", func(t *testing.T) {
		ranked := cfg.Rank([]domain.ScoredRoute{
			scoredRoute(0, 6.0, 600),
			scoredRoute(1, 7.0, 500),
			scoredRoute(2, 8.0, 500),
		}, domain.PreferFastest)

		assert.Equal(t, []int{1, 2, 0}, indexOrder(ranked))
	})

	t.Run("balanced blends score and speed", func(t *testing.T) {
		// 0.6*9.0 + 0.4*10000/3600 = 6.51 против 0.6*6.0 + 0.4*10000/600 = 10.27:
		// заметно более быстрый маршрут выигрывает у более безопасного
		ranked := cfg.Rank([]domain.ScoredRoute{
			scoredRoute(0, 9.0, 3600),
			scoredRoute(1, 6.0, 600),
		}, domain.PreferBalanced)

		assert.Equal(t, []int{1, 0}, indexOrder(ranked))
	})

	t.Run("balanced identical composites keep provider order", func(t *testing.T) {
		ranked := cfg.Rank([]domain.ScoredRoute{
			scoredRoute(0, 7.0, 500),
			scoredRoute(1, 7.0, 500),
			scoredRoute(2, 7.0, 500),
		}, domain.PreferBalanced)

		assert.Equal(t, []int{0, 1, 2}, indexOrder(ranked))
	})

	t.Run("unknown preference falls back to balanced", func(t *testing.T) {
		routes := []domain.ScoredRoute{
			scoredRoute(0, 9.0, 3600),
			scoredRoute(1, 6.0, 600),
		}

		assert.Equal(t,
			indexOrder(cfg.Rank(routes, domain.PreferBalanced)),
			indexOrder(cfg.Rank(routes, domain.RoutePreference("unknown"))))
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		routes := []domain.ScoredRoute{
			scoredRoute(0, 6.0, 600),
			scoredRoute(1, 8.0, 500),
		}

		ranked := cfg.Rank(routes, domain.PreferSafest)
		require.Equal(t, []int{1, 0}, indexOrder(ranked))
		assert.Equal(t, []int{0, 1}, indexOrder(routes))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, cfg.Rank(nil, domain.PreferSafest))
	})
}

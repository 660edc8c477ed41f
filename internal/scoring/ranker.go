package scoring

import (
	"sort"

	"github.com/saferoute-service/internal/domain"
)

// Composite weights of the balanced preference.
const (
	balancedScoreWeight    = 0.6
	balancedDurationWeight = 0.4
)

// Rank orders scored alternatives by the caller's preference. The sort is
// stable: equal keys preserve the provider-returned order. The input slice
// is not mutated.
func (c *Config) Rank(routes []domain.ScoredRoute, preference domain.RoutePreference) []domain.ScoredRoute {
	ranked := make([]domain.ScoredRoute, len(routes))
	copy(ranked, routes)

	switch preference {
	case domain.PreferSafest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Score.Overall > ranked[j].Score.Overall
		})
	case domain.PreferFastest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Candidate.DurationSeconds < ranked[j].Candidate.DurationSeconds
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return c.balancedComposite(ranked[i]) > c.balancedComposite(ranked[j])
		})
	}

	return ranked
}

// balancedComposite blends safety and speed. RankingBlendBase rescales the
// inverse-duration term into the same magnitude as the 0-10 score and must
// be preserved exactly for reproducible ranking.
func (c *Config) balancedComposite(r domain.ScoredRoute) float64 {
	duration := float64(r.Candidate.DurationSeconds)
	if duration <= 0 {
		return balancedScoreWeight * r.Score.Overall
	}
	return balancedScoreWeight*r.Score.Overall + balancedDurationWeight*c.RankingBlendBase/duration
}

package scoring

import (
	"github.com/saferoute-service/internal/domain"
)

// FactorWeights are the fixed weights of the linear combination producing
// the overall score. They must sum to 1.0.
type FactorWeights struct {
	Lighting          float64
	PolicePresence    float64
	CrimeRate         float64
	PedestrianTraffic float64
	RoadCondition     float64
	CommunityReports  float64
}

// Config holds every policy constant of the scoring pipeline. The engine
// receives it at construction so alternate policies are testable by
// substitution instead of editing literals.
type Config struct {
	// FactorPriors is the baseline FactorSet for an unknown route:
	// "assume moderately safe", not measured data.
	FactorPriors domain.FactorSet

	// FactorWeights combine clamped factors into the overall score.
	FactorWeights FactorWeights

	// SeverityWeights are always negative: reports only ever depress score.
	SeverityWeights map[domain.ReportSeverity]float64

	// TypeWeights reflect perceived danger magnitude per category, in [1.0, 3.0].
	TypeWeights map[domain.ReportType]float64

	// SampleStride keeps every N-th decoded point for proximity queries.
	SampleStride int

	// QueryRadius is the report search radius around a sample point, meters.
	QueryRadius float64

	// MaxParallelism bounds concurrent index queries within one route.
	MaxParallelism int

	// SafestScoreThreshold promotes alternative 0 to "safest".
	SafestScoreThreshold float64

	// RankingBlendBase rescales the inverse-duration term of the balanced
	// composite into the same magnitude as the 0-10 score. Tuned value,
	// not a physical quantity.
	RankingBlendBase float64
}

// DefaultConfig returns the production scoring policy.
func DefaultConfig() Config {
	return Config{
		FactorPriors: domain.FactorSet{
			Lighting:          7,
			PolicePresence:    6,
			CrimeRate:         7,
			PedestrianTraffic: 6,
			RoadCondition:     7,
			CommunityReports:  8,
		},
		FactorWeights: FactorWeights{
			Lighting:          0.20,
			PolicePresence:    0.20,
			CrimeRate:         0.25,
			PedestrianTraffic: 0.15,
			RoadCondition:     0.10,
			CommunityReports:  0.10,
		},
		SeverityWeights: map[domain.ReportSeverity]float64{
			domain.SeverityLow:      -0.5,
			domain.SeverityMedium:   -1.5,
			domain.SeverityHigh:     -3.0,
			domain.SeverityCritical: -5.0,
		},
		TypeWeights: map[domain.ReportType]float64{
			domain.ReportTheft:              3.0,
			domain.ReportRobbery:            3.0,
			domain.ReportAssault:            2.5,
			domain.ReportHarassment:         2.0,
			domain.ReportSuspiciousActivity: 1.5,
			domain.ReportVandalism:          1.5,
			domain.ReportPoorLighting:       1.0,
			domain.ReportOther:              1.0,
		},
		SampleStride:         10,
		QueryRadius:          500,
		MaxParallelism:       8,
		SafestScoreThreshold: 8.0,
		RankingBlendBase:     10000,
	}
}

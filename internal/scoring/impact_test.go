package scoring_test

import (
	"testing"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestImpact(t *testing.T) {
	cfg := scoring.DefaultConfig()

	t.Run("severity times type weight", func(t *testing.T) {
		assert.Equal(t, -15.0, cfg.Impact(domain.ReportTheft, domain.SeverityCritical))
		assert.Equal(t, -0.5, cfg.Impact(domain.ReportPoorLighting, domain.SeverityLow))
		assert.Equal(t, -4.5, cfg.Impact(domain.ReportRobbery, domain.SeverityMedium))
	})

	t.Run("always negative or zero", func(t *testing.T) {
		for _, reportType := range domain.ReportTypes {
			for _, severity := range []domain.ReportSeverity{
				domain.SeverityLow, domain.SeverityMedium,
				domain.SeverityHigh, domain.SeverityCritical,
			} {
				assert.Negative(t, cfg.Impact(reportType, severity),
					"type=%s severity=%s", reportType, severity)
			}
		}
	})

	t.Run("severity ordering", func(t *testing.T) {
		low := cfg.Impact(domain.ReportTheft, domain.SeverityLow)
		medium := cfg.Impact(domain.ReportTheft, domain.SeverityMedium)
		high := cfg.Impact(domain.ReportTheft, domain.SeverityHigh)
		critical := cfg.Impact(domain.ReportTheft, domain.SeverityCritical)

		assert.Greater(t, low, medium)
		assert.Greater(t, medium, high)
		assert.Greater(t, high, critical)
	})

	t.Run("unknown category falls back to other", func(t *testing.T) {
		assert.Equal(t,
			cfg.Impact(domain.ReportOther, domain.SeverityHigh),
			cfg.Impact(domain.ReportType("unknown"), domain.SeverityHigh))
	})
}

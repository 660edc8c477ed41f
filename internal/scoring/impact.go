package scoring

import (
	"github.com/saferoute-service/internal/domain"
)

// Impact converts a single report into its signed contribution to the
// communityReports factor: severityWeight * typeWeight. Severity weights are
// negative and type weights positive, so the product is always <= 0; larger
// magnitude means a larger safety deduction.
func (c *Config) Impact(reportType domain.ReportType, severity domain.ReportSeverity) float64 {
	severityWeight, ok := c.SeverityWeights[severity]
	if !ok {
		severityWeight = c.SeverityWeights[domain.SeverityLow]
	}

	typeWeight, ok := c.TypeWeights[reportType]
	if !ok {
		typeWeight = c.TypeWeights[domain.ReportOther]
	}

	return severityWeight * typeWeight
}

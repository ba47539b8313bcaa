package review

import "github.com/sevigo/pr-warden/internal/core"

// DefaultRiskThreshold is the total changed-line count at and above which a pull
// request is no longer auto-approved.
const DefaultRiskThreshold = 10

// ClassifyRisk maps the total number of changed lines to a risk tier.
func ClassifyRisk(totalChanges, threshold int) core.RiskTier {
	if totalChanges < threshold {
		return core.RiskLow
	}
	return core.RiskStandard
}

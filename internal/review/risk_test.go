package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/pr-warden/internal/core"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name      string
		changes   int
		threshold int
		want      core.RiskTier
	}{
		{"zero changes", 0, 10, core.RiskLow},
		{"just below threshold", 9, 10, core.RiskLow},
		{"at threshold", 10, 10, core.RiskStandard},
		{"above threshold", 50, 10, core.RiskStandard},
		{"zero threshold never low", 0, 0, core.RiskStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.changes, tt.threshold))
		})
	}
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	for threshold := 0; threshold <= 20; threshold++ {
		for changes := 0; changes <= 40; changes++ {
			got := ClassifyRisk(changes, threshold)
			if changes < threshold {
				assert.Equal(t, core.RiskLow, got, "changes=%d threshold=%d", changes, threshold)
			} else {
				assert.Equal(t, core.RiskStandard, got, "changes=%d threshold=%d", changes, threshold)
			}
		}
	}
}

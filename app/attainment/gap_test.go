package attainment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGapAnalysis(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	tests := []struct {
		name         string
		attainment   float64
		target       float64
		wantGap      string
		wantPriority string
		wantRecs     bool
	}{
		{"critical shortfall", 45, 70, "25.00", PriorityHigh, true},
		{"moderate shortfall", 60, 70, "10.00", PriorityMedium, true},
		{"on target", 70, 70, "0.00", PriorityLow, false},
		{"above target", 85, 70, "0.00", PriorityLow, false},
		{"boundary of high", 50, 70, "20.00", PriorityMedium, true},
		{"just below high cutoff", 49.99, 70, "20.01", PriorityHigh, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.analyzeGap("CO1", d(tt.target), d(tt.attainment), nil)
			assert.Equal(t, tt.wantGap, got.Gap.StringFixed(2))
			assert.Equal(t, tt.wantPriority, got.Priority)
			if tt.wantRecs {
				assert.NotEmpty(t, got.Recommendations)
			} else {
				assert.Empty(t, got.Recommendations)
			}
		})
	}
}

func TestGapRecommendationsNameCriticalCOs(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	got := calc.analyzeGap("PO1", d(70), d(55), []string{"CO1", "CO3"})
	assert.Equal(t, []string{"CO1", "CO3"}, got.CriticalCOs)

	var found bool
	for _, rec := range got.Recommendations {
		if strings.Contains(rec, "CO1") && strings.Contains(rec, "CO3") {
			found = true
		}
	}
	assert.True(t, found, "expected a recommendation naming the critical COs")
}

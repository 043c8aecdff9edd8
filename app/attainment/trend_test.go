package attainment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTrendEndpointComparison(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	tests := []struct {
		name   string
		series []float64
		want   string
	}{
		{"one point", []float64{60}, TrendInsufficient},
		{"no points", nil, TrendInsufficient},
		{"flat", []float64{60, 60}, TrendStable},
		{"up", []float64{60, 80}, TrendImproving},
		{"down", []float64{80, 60}, TrendDeclining},
		// Only the endpoints matter, not the path between them.
		{"dip then recover", []float64{60, 20, 61}, TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := make([]decimal.Decimal, len(tt.series))
			for i, v := range tt.series {
				series[i] = d(v)
			}
			got := calc.analyzeTrend(series, nil)
			assert.Equal(t, tt.want, got.Trend)
		})
	}
}

func TestConsistencyScore(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	// Identical values: sigma is zero, consistency is perfect.
	got := calc.analyzeTrend([]decimal.Decimal{d(75), d(75), d(75)}, nil)
	assert.Equal(t, "100.00", got.ConsistencyScore.StringFixed(2))

	// [60, 80]: sigma is 10, consistency 100 - 2*10.
	got = calc.analyzeTrend([]decimal.Decimal{d(60), d(80)}, nil)
	assert.Equal(t, "80.00", got.ConsistencyScore.StringFixed(2))

	// A single point carries no consistency signal.
	got = calc.analyzeTrend([]decimal.Decimal{d(60)}, nil)
	assert.Equal(t, "0.00", got.ConsistencyScore.StringFixed(2))
}

func TestDifficultyLevel(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	questions := func(pcts ...float64) []QuestionBreakdown {
		qs := make([]QuestionBreakdown, len(pcts))
		for i, p := range pcts {
			qs[i] = QuestionBreakdown{QuestionNumber: "1", Attainment: d(p)}
		}
		return qs
	}

	assert.Equal(t, DifficultyEasy, calc.analyzeTrend(nil, questions(85, 90)).DifficultyLevel)
	assert.Equal(t, DifficultyMedium, calc.analyzeTrend(nil, questions(60, 70)).DifficultyLevel)
	assert.Equal(t, DifficultyHard, calc.analyzeTrend(nil, questions(40, 50)).DifficultyLevel)
}

func TestStrengthAndImprovementAreas(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	questions := []QuestionBreakdown{
		{QuestionNumber: "1", Attainment: d(95)},
		{QuestionNumber: "2", Attainment: d(85)},
		{QuestionNumber: "3", Attainment: d(90)},
		{QuestionNumber: "4", Attainment: d(82)},
		{QuestionNumber: "5", Attainment: d(70)},
		{QuestionNumber: "6", Attainment: d(40)},
		{QuestionNumber: "7", Attainment: d(55)},
	}
	got := calc.analyzeTrend(nil, questions)

	// Top three strengths by attainment, even though four qualify.
	assert.Equal(t, []string{"Q1", "Q3", "Q2"}, got.StrengthAreas)
	// Weakest first among those below the improvement cutoff.
	assert.Equal(t, []string{"Q6", "Q7"}, got.ImprovementAreas)
}

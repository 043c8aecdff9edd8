package attainment

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// analyzeTrend derives trend and consistency from a CO's chronological
// per-exam attainment series, plus difficulty and strength/improvement
// areas from its per-question attainments. The trend is a plain endpoint
// comparison of the first and last exam; intermediate fluctuation is not
// considered.
func (c *Calculator) analyzeTrend(series []decimal.Decimal, questions []QuestionBreakdown) TrendAnalysis {
	t := TrendAnalysis{
		Trend:            TrendInsufficient,
		ConsistencyScore: decimal.Zero,
	}

	if len(series) >= 2 {
		first, last := series[0], series[len(series)-1]
		switch {
		case first.LessThan(last):
			t.Trend = TrendImproving
		case first.GreaterThan(last):
			t.Trend = TrendDeclining
		default:
			t.Trend = TrendStable
		}

		consistency := 100 - 2*populationStdDev(series)
		if consistency < 0 {
			consistency = 0
		}
		t.ConsistencyScore = decimal.NewFromFloat(consistency).Round(2)
	}

	if len(questions) > 0 {
		values := make([]decimal.Decimal, len(questions))
		for i, q := range questions {
			values[i] = q.Attainment
		}
		avg := meanDecimal(values)
		switch {
		case avg.GreaterThanOrEqual(c.cfg.DifficultyEasyMin):
			t.DifficultyLevel = DifficultyEasy
		case avg.GreaterThanOrEqual(c.cfg.DifficultyMediumMin):
			t.DifficultyLevel = DifficultyMedium
		default:
			t.DifficultyLevel = DifficultyHard
		}

		t.StrengthAreas = topQuestions(questions, c.cfg.StrengthMin, true)
		t.ImprovementAreas = topQuestions(questions, c.cfg.ImprovementBelow, false)
	}

	return t
}

// topQuestions returns up to three question labels: the highest-attaining
// questions at or above the cutoff when strengths is true, otherwise the
// lowest-attaining questions below it.
func topQuestions(questions []QuestionBreakdown, cutoff decimal.Decimal, strengths bool) []string {
	sorted := make([]QuestionBreakdown, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if strengths {
			return sorted[i].Attainment.GreaterThan(sorted[j].Attainment)
		}
		return sorted[i].Attainment.LessThan(sorted[j].Attainment)
	})

	var labels []string
	for _, q := range sorted {
		if strengths && q.Attainment.LessThan(cutoff) {
			break
		}
		if !strengths && q.Attainment.GreaterThanOrEqual(cutoff) {
			break
		}
		labels = append(labels, fmt.Sprintf("Q%s", q.QuestionNumber))
		if len(labels) == 3 {
			break
		}
	}
	return labels
}

package attainment

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ValidateWeights checks that the weight_pct values of one grouping key
// (a question's CO weights, a subject's assessment weights) sum to 100
// within the given tolerance. It returns a *WeightSumError naming the key
// and the computed sum on failure.
func ValidateWeights(key string, weights []decimal.Decimal, tolerance decimal.Decimal) error {
	sum := decimal.Zero
	for _, w := range weights {
		sum = sum.Add(w)
	}
	if sum.Sub(hundred).Abs().GreaterThan(tolerance) {
		return &WeightSumError{Key: key, Sum: sum}
	}
	return nil
}

// ValidateWeights applies the calculator's configured tolerance.
func (c *Calculator) ValidateWeights(key string, weights []decimal.Decimal) error {
	return ValidateWeights(key, weights, c.cfg.WeightTolerance)
}

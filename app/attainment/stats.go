package attainment

import (
	"math"

	"github.com/shopspring/decimal"
)

// meanDecimal returns the arithmetic mean of vals, or zero for an empty
// slice.
func meanDecimal(vals []decimal.Decimal) decimal.Decimal {
	if len(vals) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range vals {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(vals))))
}

// populationVariance computes the population variance of vals. The
// squaring is done in float64; the spread metrics are advisory figures,
// not chained into further aggregation.
func populationVariance(vals []decimal.Decimal) float64 {
	if len(vals) == 0 {
		return 0
	}
	mean := meanDecimal(vals).InexactFloat64()
	var sum float64
	for _, v := range vals {
		d := v.InexactFloat64() - mean
		sum += d * d
	}
	return sum / float64(len(vals))
}

// populationStdDev computes the population standard deviation of vals.
func populationStdDev(vals []decimal.Decimal) float64 {
	return math.Sqrt(populationVariance(vals))
}

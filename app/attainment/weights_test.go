package attainment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWeights(t *testing.T) {
	tolerance := DefaultConfig().WeightTolerance

	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{"exact hundred", []float64{60, 40}, false},
		{"single full weight", []float64{100}, false},
		{"within tolerance low", []float64{49.995, 49.995}, false},
		{"within tolerance high", []float64{50.005, 50.005}, false},
		{"under", []float64{30, 30}, true},
		{"over", []float64{60, 60}, true},
		{"just outside tolerance", []float64{50, 50.02}, true},
		{"empty set", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := make([]decimal.Decimal, len(tt.weights))
			for i, w := range tt.weights {
				weights[i] = d(w)
			}
			err := ValidateWeights("Q1", weights, tolerance)
			if tt.wantErr {
				require.Error(t, err)
				var wse *WeightSumError
				require.ErrorAs(t, err, &wse)
				assert.Equal(t, "Q1", wse.Key)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateWeightsErrorMessage(t *testing.T) {
	err := ValidateWeights("CSE101 assessment weights", []decimal.Decimal{d(40), d(30)}, d(0.01))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSE101 assessment weights")
	assert.Contains(t, err.Error(), "70.00")
}

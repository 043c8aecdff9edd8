package attainment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeightSumError reports a sibling weight set that does not sum to 100%.
// Weight sets are rejected, never renormalized, so data-entry mistakes
// surface instead of being hidden.
type WeightSumError struct {
	Key string
	Sum decimal.Decimal
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("weight set %q sums to %s, must sum to 100", e.Key, e.Sum.StringFixed(2))
}

// EntityNotFoundError reports a missing subject or department referenced by
// a calculation request.
type EntityNotFoundError struct {
	Entity string
	ID     string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

package attainment

import (
	"sort"

	"github.com/shopspring/decimal"
)

// analyzeDependencies ranks a PO's CO contributions and reports how
// concentrated its attainment is in the top half of them. The critical set
// is the top ceil(n/2) contributors, never fewer than one.
func (c *Calculator) analyzeDependencies(contributions []COContribution) DependencyAnalysis {
	d := DependencyAnalysis{
		DependencyRatio:      decimal.Zero,
		DependencyLevel:      DependencyLow,
		ContributionVariance: decimal.Zero,
	}
	if len(contributions) == 0 {
		return d
	}

	sorted := make([]COContribution, len(contributions))
	copy(sorted, contributions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Contribution.GreaterThan(sorted[j].Contribution)
	})

	criticalCount := (len(sorted) + 1) / 2
	if criticalCount < 1 {
		criticalCount = 1
	}

	totalSum := decimal.Zero
	criticalSum := decimal.Zero
	values := make([]decimal.Decimal, 0, len(sorted))
	for i, contribution := range sorted {
		totalSum = totalSum.Add(contribution.Contribution)
		values = append(values, contribution.Contribution)
		if i < criticalCount {
			criticalSum = criticalSum.Add(contribution.Contribution)
			d.CriticalCOs = append(d.CriticalCOs, contribution.COCode)
		}
	}

	if totalSum.IsPositive() {
		d.DependencyRatio = criticalSum.Div(totalSum).Round(4)
	}
	switch {
	case d.DependencyRatio.GreaterThanOrEqual(c.cfg.DependencyHighAbove):
		d.DependencyLevel = DependencyHigh
	case d.DependencyRatio.GreaterThanOrEqual(c.cfg.DependencyMediumAbove):
		d.DependencyLevel = DependencyMedium
	}
	d.ContributionVariance = decimal.NewFromFloat(populationVariance(values)).Round(2)

	return d
}

package attainment

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// analyzeGap compares attainment against target and assigns a remediation
// priority. Recommendation text is generated for High and Medium entries
// only; criticalCOs, when given, names the COs driving a PO's gap.
func (c *Calculator) analyzeGap(code string, target, attainment decimal.Decimal, criticalCOs []string) GapAnalysis {
	gap := target.Sub(attainment)
	if gap.IsNegative() {
		gap = decimal.Zero
	}

	priority := PriorityLow
	switch {
	case attainment.LessThan(c.cfg.HighPriorityBelow):
		priority = PriorityHigh
	case attainment.LessThan(target):
		priority = PriorityMedium
	}

	g := GapAnalysis{
		Target:      target,
		Attainment:  attainment,
		Gap:         gap.Round(2),
		Priority:    priority,
		CriticalCOs: criticalCOs,
	}
	if priority != PriorityLow {
		g.Recommendations = recommendations(code, g.Gap, priority, criticalCOs)
	}
	return g
}

func recommendations(code string, gap decimal.Decimal, priority string, criticalCOs []string) []string {
	var recs []string
	switch priority {
	case PriorityHigh:
		recs = append(recs,
			fmt.Sprintf("%s is critically below target (gap %s%%): schedule remedial classes for the weakest topics", code, gap.StringFixed(2)),
			fmt.Sprintf("Plan targeted interventions for students scoring below the class average in %s", code),
			fmt.Sprintf("Review whether the assessments mapped to %s test what was actually taught", code),
		)
	case PriorityMedium:
		recs = append(recs,
			fmt.Sprintf("%s is %s%% short of target: assign additional practice work on its topics", code, gap.StringFixed(2)),
			fmt.Sprintf("Give individual feedback to students on the questions mapped to %s", code),
		)
	}
	if len(criticalCOs) > 0 {
		recs = append(recs, fmt.Sprintf("Focus improvement effort on %s, which drive most of this outcome", strings.Join(criticalCOs, ", ")))
	}
	return recs
}

package attainment

import (
	"context"

	"github.com/shopspring/decimal"
)

// POAttainment aggregates CO attainment into PO/PSO attainment for a
// department using CO-PO mapping strengths (1-3) as weights. CO results
// are memoized per (subject, exam type) within the request, so a CO feeding
// several POs is only computed once. A PO with no mappings in scope, or
// whose mapped COs all lack marks data, is omitted from the result set.
func (c *Calculator) POAttainment(ctx context.Context, departmentID string, filters POFilters) (*POAttainmentResult, error) {
	if filters.ExamType == "" {
		filters.ExamType = ExamTypeAll
	}

	department, err := c.store.Department(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, &EntityNotFoundError{Entity: "department", ID: departmentID}
	}

	outcomes, err := c.store.ProgramOutcomes(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	result := &POAttainmentResult{
		DepartmentID: departmentID,
		ExamType:     filters.ExamType,
	}
	for _, po := range outcomes {
		mappings, err := c.store.Mappings(ctx, po.ID, filters)
		if err != nil {
			return nil, err
		}
		if len(mappings) == 0 {
			continue
		}

		record, ok, err := c.buildPO(ctx, po, mappings, filters)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		result.Outcomes = append(result.Outcomes, record)
	}
	result.Summary = c.summarizePO(result.Outcomes)

	return result, nil
}

func (c *Calculator) buildPO(ctx context.Context, po ProgramOutcome, mappings []COMapping, filters POFilters) (POAttainment, bool, error) {
	weighted := decimal.Zero
	totalWeight := decimal.Zero
	var contributions []COContribution

	for _, m := range mappings {
		coResult, err := c.COAttainment(ctx, m.SubjectID, filters.ExamType)
		if err != nil {
			return POAttainment{}, false, err
		}
		coAttainment, found := findOutcome(coResult.Outcomes, m.COID)
		if !found {
			// The CO was omitted for lack of marks data; it contributes
			// nothing rather than pulling the PO towards zero.
			continue
		}

		weight := decimal.NewFromInt(int64(m.Strength))
		contribution := coAttainment.Mul(weight)
		weighted = weighted.Add(contribution)
		totalWeight = totalWeight.Add(weight)
		contributions = append(contributions, COContribution{
			COID:         m.COID,
			COCode:       m.COCode,
			SubjectID:    m.SubjectID,
			Strength:     m.Strength,
			Attainment:   coAttainment,
			Weight:       weight,
			Contribution: contribution.Round(2),
		})
	}

	if !totalWeight.IsPositive() {
		return POAttainment{}, false, nil
	}

	attainment := weighted.Div(totalWeight).Round(2)
	target := po.Target
	if target.IsZero() {
		target = c.cfg.DefaultTarget
	}
	status := StatusNotAchieved
	if attainment.GreaterThanOrEqual(target) {
		status = StatusAchieved
	}

	dependency := c.analyzeDependencies(contributions)
	return POAttainment{
		POID:          po.ID,
		Code:          po.Code,
		Type:          po.Type,
		Title:         po.Title,
		Target:        target,
		Attainment:    attainment,
		Status:        status,
		Gap:           c.analyzeGap(po.Code, target, attainment, dependency.CriticalCOs),
		Contributions: contributions,
		Dependency:    dependency,
	}, true, nil
}

func (c *Calculator) summarizePO(outcomes []POAttainment) Summary {
	s := Summary{TotalOutcomes: len(outcomes)}
	if len(outcomes) == 0 {
		return s
	}
	values := make([]decimal.Decimal, 0, len(outcomes))
	for _, o := range outcomes {
		values = append(values, o.Attainment)
		if o.Status == StatusAchieved {
			s.AchievedCount++
		}
	}
	s.OverallAttainment = meanDecimal(values).Round(2)
	s.AchievementRate = decimal.NewFromInt(int64(s.AchievedCount)).
		Div(decimal.NewFromInt(int64(len(outcomes)))).Mul(hundred).Round(2)
	return s
}

func findOutcome(outcomes []COAttainment, coID string) (decimal.Decimal, bool) {
	for _, o := range outcomes {
		if o.COID == coID {
			return o.Attainment, true
		}
	}
	return decimal.Zero, false
}

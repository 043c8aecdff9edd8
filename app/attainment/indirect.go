package attainment

import (
	"context"

	"github.com/shopspring/decimal"
)

// IndirectAttainment blends survey and exit-exam signals into a single
// percentage for a department, weighted 0.6/0.4 and renormalized when only
// one source has data. It is reported alongside the direct CO/PO figures,
// never merged into them. With no data at all the result is a flagged
// zero, not an error.
func (c *Calculator) IndirectAttainment(ctx context.Context, departmentID, academicYear string) (*IndirectResult, error) {
	department, err := c.store.Department(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, &EntityNotFoundError{Entity: "department", ID: departmentID}
	}

	surveys, err := c.store.SurveyAggregates(ctx, departmentID, academicYear)
	if err != nil {
		return nil, err
	}
	exams, err := c.store.ExitExamAggregates(ctx, departmentID, academicYear)
	if err != nil {
		return nil, err
	}

	result := &IndirectResult{
		DepartmentID:       departmentID,
		AcademicYear:       academicYear,
		Attainment:         decimal.Zero,
		SurveyAttainment:   decimal.Zero,
		ExitExamAttainment: decimal.Zero,
	}

	var surveyEstimates []decimal.Decimal
	for _, survey := range surveys {
		estimate, ok := c.surveyEstimate(survey)
		if !ok {
			continue
		}
		surveyEstimates = append(surveyEstimates, estimate)
	}
	result.SurveyCount = len(surveyEstimates)

	var examAverages []decimal.Decimal
	for _, exam := range exams {
		if exam.ResultCount == 0 {
			continue
		}
		examAverages = append(examAverages, exam.AveragePercent)
	}
	result.ExitExamCount = len(examAverages)

	blended := decimal.Zero
	totalWeight := decimal.Zero
	if len(surveyEstimates) > 0 {
		result.SurveyAttainment = meanDecimal(surveyEstimates).Round(2)
		blended = blended.Add(result.SurveyAttainment.Mul(c.cfg.SurveyWeight))
		totalWeight = totalWeight.Add(c.cfg.SurveyWeight)
	}
	if len(examAverages) > 0 {
		result.ExitExamAttainment = meanDecimal(examAverages).Round(2)
		blended = blended.Add(result.ExitExamAttainment.Mul(c.cfg.ExitExamWeight))
		totalWeight = totalWeight.Add(c.cfg.ExitExamWeight)
	}

	if totalWeight.IsPositive() {
		result.Attainment = blended.Div(totalWeight).Round(2)
		result.HasData = true
	}
	return result, nil
}

// surveyEstimate averages a survey's per-question attainment estimates.
// Rating questions map the average rating onto a percentage; any other
// question type with at least one response is assumed at the configured
// estimate (a documented policy constant, not a measured value). Questions
// without responses are skipped; a survey with no answered questions
// contributes nothing.
func (c *Calculator) surveyEstimate(survey SurveyAggregate) (decimal.Decimal, bool) {
	var estimates []decimal.Decimal
	for _, q := range survey.Questions {
		if q.ResponseCount == 0 {
			continue
		}
		if q.Type == QuestionTypeRating {
			avgRating := q.RatingSum.Div(decimal.NewFromInt(int64(q.ResponseCount)))
			estimates = append(estimates, avgRating.Div(c.cfg.MaxSurveyRating).Mul(hundred))
		} else {
			estimates = append(estimates, c.cfg.NonRatingEstimate)
		}
	}
	if len(estimates) == 0 {
		return decimal.Zero, false
	}
	return meanDecimal(estimates).Round(2), true
}

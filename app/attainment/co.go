package attainment

import (
	"context"

	"github.com/shopspring/decimal"
)

// COAttainment computes per-CO attainment for a subject, optionally
// restricted to one exam type ("all" or a concrete type). A CO with no
// graded questions in scope is omitted from the result set entirely so it
// cannot drag the summary average down.
func (c *Calculator) COAttainment(ctx context.Context, subjectID, examType string) (*COAttainmentResult, error) {
	if examType == "" {
		examType = ExamTypeAll
	}
	key := coMemoKey{subjectID: subjectID, examType: examType}
	if cached, ok := c.coMemo[key]; ok {
		return cached, nil
	}

	subject, err := c.store.Subject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, &EntityNotFoundError{Entity: "subject", ID: subjectID}
	}

	outcomes, err := c.store.CourseOutcomes(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	exams, err := c.store.Exams(ctx, subjectID, examType)
	if err != nil {
		return nil, err
	}
	examIDs := make([]string, len(exams))
	for i, e := range exams {
		examIDs[i] = e.ID
	}

	result := &COAttainmentResult{
		SubjectID:   subjectID,
		SubjectCode: subject.Code,
		ExamType:    examType,
	}
	for _, co := range outcomes {
		slices, err := c.store.QuestionSlices(ctx, co.ID, examIDs)
		if err != nil {
			return nil, err
		}
		record, ok := c.buildCO(co, exams, slices)
		if !ok {
			continue
		}
		result.Outcomes = append(result.Outcomes, record)
	}
	result.Summary = c.summarizeCO(result.Outcomes)

	c.coMemo[key] = result
	return result, nil
}

// buildCO aggregates one CO's question slices into its attainment record.
// The second return value is false when the CO has no graded questions in
// scope. The weighted maximum of each question scales with the number of
// graded students so the attainment ratio stays within [0,100].
func (c *Calculator) buildCO(co CourseOutcome, exams []Exam, slices []QuestionSlice) (COAttainment, bool) {
	totalMax := decimal.Zero
	totalObtained := decimal.Zero
	examMax := make(map[string]decimal.Decimal)
	examObtained := make(map[string]decimal.Decimal)
	var questions []QuestionBreakdown

	for _, s := range slices {
		// A question with no graded students or a zero maximum carries
		// no signal; skip its contribution.
		if s.StudentCount == 0 || !s.MaxMarks.IsPositive() {
			continue
		}
		students := decimal.NewFromInt(int64(s.StudentCount))
		weightedMax := s.MaxMarks.Mul(students).Mul(s.WeightPct).Div(hundred)
		weightedObtained := s.ObtainedTotal.Mul(s.WeightPct).Div(hundred)

		totalMax = totalMax.Add(weightedMax)
		totalObtained = totalObtained.Add(weightedObtained)
		examMax[s.ExamID] = examMax[s.ExamID].Add(weightedMax)
		examObtained[s.ExamID] = examObtained[s.ExamID].Add(weightedObtained)

		questions = append(questions, QuestionBreakdown{
			QuestionID:       s.QuestionID,
			QuestionNumber:   s.QuestionNumber,
			ExamID:           s.ExamID,
			WeightPct:        s.WeightPct,
			WeightedMax:      weightedMax,
			WeightedObtained: weightedObtained,
			Attainment:       ratioPct(weightedObtained, weightedMax),
		})
	}

	if !totalMax.IsPositive() {
		return COAttainment{}, false
	}

	attainment := ratioPct(totalObtained, totalMax)
	target := co.Target
	if target.IsZero() {
		target = c.cfg.DefaultTarget
	}
	status := StatusNotAchieved
	if attainment.GreaterThanOrEqual(target) {
		status = StatusAchieved
	}

	// Exam breakdown keeps the store's date ordering so the trend
	// analyzer sees a chronological series.
	var breakdown []ExamBreakdown
	var series []decimal.Decimal
	for _, e := range exams {
		max, ok := examMax[e.ID]
		if !ok || !max.IsPositive() {
			continue
		}
		pct := ratioPct(examObtained[e.ID], max)
		breakdown = append(breakdown, ExamBreakdown{
			ExamID:     e.ID,
			ExamName:   e.Name,
			ExamType:   e.Type,
			ExamDate:   e.Date,
			Attainment: pct,
		})
		series = append(series, pct)
	}

	return COAttainment{
		COID:          co.ID,
		Code:          co.Code,
		Title:         co.Title,
		Target:        target,
		Attainment:    attainment,
		TotalMarks:    totalMax.Round(2),
		ObtainedMarks: totalObtained.Round(2),
		Status:        status,
		Level:         attainmentLevel(co, attainment),
		Gap:           c.analyzeGap(co.Code, target, attainment, nil),
		Trend:         c.analyzeTrend(series, questions),
		Exams:         breakdown,
		Questions:     questions,
	}, true
}

func (c *Calculator) summarizeCO(outcomes []COAttainment) Summary {
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

// attainmentLevel grades attainment into levels 0-3 using the CO's own
// thresholds, falling back to 60/70/80 when none are configured.
func attainmentLevel(co CourseOutcome, attainment decimal.Decimal) int {
	l1, l2, l3 := co.L1, co.L2, co.L3
	if l1.IsZero() && l2.IsZero() && l3.IsZero() {
		l1 = decimal.NewFromInt(60)
		l2 = decimal.NewFromInt(70)
		l3 = decimal.NewFromInt(80)
	}
	switch {
	case attainment.GreaterThanOrEqual(l3):
		return 3
	case attainment.GreaterThanOrEqual(l2):
		return 2
	case attainment.GreaterThanOrEqual(l1):
		return 1
	default:
		return 0
	}
}

// ratioPct returns obtained/max*100 rounded to 2 decimals. max must be
// positive; callers guard the zero case.
func ratioPct(obtained, max decimal.Decimal) decimal.Decimal {
	return obtained.Div(max).Mul(hundred).Round(2)
}

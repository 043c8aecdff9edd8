package attainment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectFixture() *fakeStore {
	s := newFakeStore()
	s.subjects["sub1"] = &Subject{ID: "sub1", DepartmentID: "dept1", Code: "CSE101", Name: "Data Structures"}
	s.cos["sub1"] = []CourseOutcome{
		{ID: "co1", SubjectID: "sub1", Code: "CO1", Title: "Analyze complexity", Target: d(70)},
	}
	s.exams["sub1"] = []Exam{
		{ID: "ex1", Name: "Mid Term", Type: "internal", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	s.slices["co1"] = []QuestionSlice{
		{ExamID: "ex1", QuestionID: "q1", QuestionNumber: "1", MaxMarks: d(10), WeightPct: d(100), ObtainedTotal: d(8), StudentCount: 1},
		{ExamID: "ex1", QuestionID: "q2", QuestionNumber: "2", MaxMarks: d(10), WeightPct: d(100), ObtainedTotal: d(6), StudentCount: 1},
	}
	return s
}

func TestCOAttainmentSingleStudent(t *testing.T) {
	calc := New(subjectFixture(), DefaultConfig())

	result, err := calc.COAttainment(context.Background(), "sub1", ExamTypeAll)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)

	co := result.Outcomes[0]
	assert.Equal(t, "CO1", co.Code)
	assert.Equal(t, "20.00", co.TotalMarks.StringFixed(2))
	assert.Equal(t, "14.00", co.ObtainedMarks.StringFixed(2))
	assert.Equal(t, "70.00", co.Attainment.StringFixed(2))
	assert.Equal(t, StatusAchieved, co.Status)
	assert.Equal(t, 2, co.Level)
	assert.Equal(t, "0.00", co.Gap.Gap.StringFixed(2))
	assert.Equal(t, PriorityLow, co.Gap.Priority)
	assert.Empty(t, co.Gap.Recommendations)
	require.Len(t, co.Questions, 2)
	assert.Equal(t, "80.00", co.Questions[0].Attainment.StringFixed(2))
	assert.Equal(t, "60.00", co.Questions[1].Attainment.StringFixed(2))
	require.Len(t, co.Exams, 1)
	assert.Equal(t, "70.00", co.Exams[0].Attainment.StringFixed(2))

	assert.Equal(t, 1, result.Summary.TotalOutcomes)
	assert.Equal(t, 1, result.Summary.AchievedCount)
	assert.Equal(t, "100.00", result.Summary.AchievementRate.StringFixed(2))
	assert.Equal(t, "70.00", result.Summary.OverallAttainment.StringFixed(2))
}

func TestCOAttainmentStaysWithinBounds(t *testing.T) {
	store := subjectFixture()
	// Two students both scoring full marks: the obtained sum doubles but
	// so does the weighted maximum.
	store.slices["co1"] = []QuestionSlice{
		{ExamID: "ex1", QuestionID: "q1", QuestionNumber: "1", MaxMarks: d(10), WeightPct: d(100), ObtainedTotal: d(20), StudentCount: 2},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.COAttainment(context.Background(), "sub1", ExamTypeAll)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "100.00", result.Outcomes[0].Attainment.StringFixed(2))
}

func TestCOWithoutMarksIsOmitted(t *testing.T) {
	store := subjectFixture()
	store.cos["sub1"] = append(store.cos["sub1"],
		CourseOutcome{ID: "co2", SubjectID: "sub1", Code: "CO2", Title: "Apply algorithms", Target: d(70)})
	calc := New(store, DefaultConfig())

	result, err := calc.COAttainment(context.Background(), "sub1", ExamTypeAll)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "CO1", result.Outcomes[0].Code)
	// The omitted CO must not drag the summary average down.
	assert.Equal(t, "70.00", result.Summary.OverallAttainment.StringFixed(2))
}

func TestCOSummaryIsMeanOfReportedOutcomes(t *testing.T) {
	store := subjectFixture()
	store.cos["sub1"] = append(store.cos["sub1"],
		CourseOutcome{ID: "co2", SubjectID: "sub1", Code: "CO2", Title: "Apply algorithms", Target: d(70)})
	store.slices["co2"] = []QuestionSlice{
		{ExamID: "ex1", QuestionID: "q3", QuestionNumber: "3", MaxMarks: d(10), WeightPct: d(100), ObtainedTotal: d(5), StudentCount: 1},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.COAttainment(context.Background(), "sub1", ExamTypeAll)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	// CO1 at 70, CO2 at 50.
	assert.Equal(t, "60.00", result.Summary.OverallAttainment.StringFixed(2))
	assert.Equal(t, 1, result.Summary.AchievedCount)
	assert.Equal(t, "50.00", result.Summary.AchievementRate.StringFixed(2))
}

func TestCOExamTypeFilter(t *testing.T) {
	store := subjectFixture()
	calc := New(store, DefaultConfig())

	// The only exam is internal; filtering to external leaves no scope.
	result, err := calc.COAttainment(context.Background(), "sub1", "external")
	require.NoError(t, err)
	assert.Empty(t, result.Outcomes)
	assert.Equal(t, 0, result.Summary.TotalOutcomes)
}

func TestCOAttainmentUnknownSubject(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	_, err := calc.COAttainment(context.Background(), "missing", ExamTypeAll)
	require.Error(t, err)
	var nfe *EntityNotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "subject", nfe.Entity)
}

func TestCOZeroMaxQuestionSkipped(t *testing.T) {
	store := subjectFixture()
	store.slices["co1"] = append(store.slices["co1"],
		QuestionSlice{ExamID: "ex1", QuestionID: "q9", QuestionNumber: "9", MaxMarks: d(0), WeightPct: d(100), ObtainedTotal: d(3), StudentCount: 1})
	calc := New(store, DefaultConfig())

	result, err := calc.COAttainment(context.Background(), "sub1", ExamTypeAll)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	// The zero-max question contributes nothing.
	assert.Equal(t, "70.00", result.Outcomes[0].Attainment.StringFixed(2))
	assert.Len(t, result.Outcomes[0].Questions, 2)
}

package attainment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indirectFixture() *fakeStore {
	s := newFakeStore()
	s.departments["dept1"] = &Department{ID: "dept1", Code: "CSE", Name: "Computer Science"}
	return s
}

func TestIndirectNoDataIsFlaggedZero(t *testing.T) {
	calc := New(indirectFixture(), DefaultConfig())

	result, err := calc.IndirectAttainment(context.Background(), "dept1", "2024-25")
	require.NoError(t, err)
	assert.False(t, result.HasData)
	assert.Equal(t, "0.00", result.Attainment.StringFixed(2))
	assert.Equal(t, 0, result.SurveyCount)
	assert.Equal(t, 0, result.ExitExamCount)
}

func TestIndirectSurveyOnly(t *testing.T) {
	store := indirectFixture()
	store.surveys["dept1"] = []SurveyAggregate{
		{
			SurveyID: "s1",
			Title:    "Graduate exit survey",
			Questions: []SurveyQuestionAggregate{
				// Average rating 4 of 5 maps to 80%.
				{QuestionID: "q1", Type: QuestionTypeRating, ResponseCount: 10, RatingSum: d(40)},
			},
		},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.IndirectAttainment(context.Background(), "dept1", "2024-25")
	require.NoError(t, err)
	assert.True(t, result.HasData)
	assert.Equal(t, 1, result.SurveyCount)
	assert.Equal(t, "80.00", result.SurveyAttainment.StringFixed(2))
	// Only the survey weight contributed, so renormalization returns the
	// survey figure unchanged.
	assert.Equal(t, "80.00", result.Attainment.StringFixed(2))
}

func TestIndirectBlendsSurveysAndExitExams(t *testing.T) {
	store := indirectFixture()
	store.surveys["dept1"] = []SurveyAggregate{
		{
			SurveyID: "s1",
			Questions: []SurveyQuestionAggregate{
				{QuestionID: "q1", Type: QuestionTypeRating, ResponseCount: 5, RatingSum: d(20)},
			},
		},
	}
	store.exitExams["dept1"] = []ExitExamAggregate{
		{ExamID: "e1", Name: "GATE mock", AveragePercent: d(70), ResultCount: 12},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.IndirectAttainment(context.Background(), "dept1", "2024-25")
	require.NoError(t, err)
	// 80 * 0.6 + 70 * 0.4 = 76.
	assert.Equal(t, "76.00", result.Attainment.StringFixed(2))
	assert.Equal(t, 1, result.SurveyCount)
	assert.Equal(t, 1, result.ExitExamCount)
}

func TestIndirectNonRatingQuestionsAssumed(t *testing.T) {
	store := indirectFixture()
	store.surveys["dept1"] = []SurveyAggregate{
		{
			SurveyID: "s1",
			Questions: []SurveyQuestionAggregate{
				{QuestionID: "q1", Type: "text", ResponseCount: 3},
			},
		},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.IndirectAttainment(context.Background(), "dept1", "")
	require.NoError(t, err)
	// Non-rating questions with responses are assumed at 70%.
	assert.Equal(t, "70.00", result.Attainment.StringFixed(2))
}

func TestIndirectSkipsEmptySources(t *testing.T) {
	store := indirectFixture()
	// A survey whose questions have no responses contributes nothing.
	store.surveys["dept1"] = []SurveyAggregate{
		{
			SurveyID: "s1",
			Questions: []SurveyQuestionAggregate{
				{QuestionID: "q1", Type: QuestionTypeRating, ResponseCount: 0},
			},
		},
	}
	// An exit exam without results contributes nothing either.
	store.exitExams["dept1"] = []ExitExamAggregate{
		{ExamID: "e1", Name: "GATE mock", ResultCount: 0},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.IndirectAttainment(context.Background(), "dept1", "")
	require.NoError(t, err)
	assert.False(t, result.HasData)
	assert.Equal(t, "0.00", result.Attainment.StringFixed(2))
}

func TestIndirectUnknownDepartment(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	_, err := calc.IndirectAttainment(context.Background(), "missing", "")
	require.Error(t, err)
	var nfe *EntityNotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "department", nfe.Entity)
}

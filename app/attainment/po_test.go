package attainment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func departmentFixture() *fakeStore {
	s := subjectFixture()
	s.departments["dept1"] = &Department{ID: "dept1", Code: "CSE", Name: "Computer Science"}
	s.pos["dept1"] = []ProgramOutcome{
		{ID: "po1", DepartmentID: "dept1", Code: "PO1", Type: "PO", Title: "Engineering knowledge", Target: d(70)},
	}
	s.mappings["po1"] = []COMapping{
		{COID: "co1", COCode: "CO1", SubjectID: "sub1", Strength: 3},
	}
	return s
}

func TestPOSingleMappingIsIdentity(t *testing.T) {
	calc := New(departmentFixture(), DefaultConfig())

	result, err := calc.POAttainment(context.Background(), "dept1", POFilters{})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)

	po := result.Outcomes[0]
	// A single CO at strength 3 degenerates to that CO's own attainment.
	assert.Equal(t, "70.00", po.Attainment.StringFixed(2))
	assert.Equal(t, StatusAchieved, po.Status)
	assert.Equal(t, []string{"CO1"}, po.Dependency.CriticalCOs)
}

func TestPOStrengthWeightedAverage(t *testing.T) {
	store := departmentFixture()
	store.cos["sub1"] = append(store.cos["sub1"],
		CourseOutcome{ID: "co2", SubjectID: "sub1", Code: "CO2", Title: "Apply algorithms", Target: d(70)})
	// CO2 attains 50%.
	store.slices["co2"] = []QuestionSlice{
		{ExamID: "ex1", QuestionID: "q3", QuestionNumber: "3", MaxMarks: d(10), WeightPct: d(100), ObtainedTotal: d(5), StudentCount: 1},
	}
	store.mappings["po1"] = []COMapping{
		{COID: "co1", COCode: "CO1", SubjectID: "sub1", Strength: 3},
		{COID: "co2", COCode: "CO2", SubjectID: "sub1", Strength: 1},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.POAttainment(context.Background(), "dept1", POFilters{})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	// (70*3 + 50*1) / 4 = 65.
	assert.Equal(t, "65.00", result.Outcomes[0].Attainment.StringFixed(2))
	assert.Equal(t, StatusNotAchieved, result.Outcomes[0].Status)
	assert.Equal(t, PriorityMedium, result.Outcomes[0].Gap.Priority)
}

func TestPOWithoutMappingsIsOmitted(t *testing.T) {
	store := departmentFixture()
	store.pos["dept1"] = append(store.pos["dept1"],
		ProgramOutcome{ID: "po2", DepartmentID: "dept1", Code: "PO2", Type: "PO", Title: "Problem analysis", Target: d(70)})
	calc := New(store, DefaultConfig())

	result, err := calc.POAttainment(context.Background(), "dept1", POFilters{})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "PO1", result.Outcomes[0].Code)
}

func TestPOWithOnlyDatalessCOsIsOmitted(t *testing.T) {
	store := departmentFixture()
	store.cos["sub1"] = append(store.cos["sub1"],
		CourseOutcome{ID: "co9", SubjectID: "sub1", Code: "CO9", Title: "No marks yet", Target: d(70)})
	store.pos["dept1"] = append(store.pos["dept1"],
		ProgramOutcome{ID: "po2", DepartmentID: "dept1", Code: "PO2", Type: "PO", Title: "Problem analysis", Target: d(70)})
	store.mappings["po2"] = []COMapping{
		{COID: "co9", COCode: "CO9", SubjectID: "sub1", Strength: 2},
	}
	calc := New(store, DefaultConfig())

	result, err := calc.POAttainment(context.Background(), "dept1", POFilters{})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "PO1", result.Outcomes[0].Code)
}

func TestPODependencyAnalysis(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	contributions := []COContribution{
		{COCode: "CO1", Contribution: d(40)},
		{COCode: "CO2", Contribution: d(10)},
	}
	got := calc.analyzeDependencies(contributions)

	assert.Equal(t, []string{"CO1"}, got.CriticalCOs)
	assert.Equal(t, "0.8000", got.DependencyRatio.StringFixed(4))
	assert.Equal(t, DependencyHigh, got.DependencyLevel)
	// Population variance of {40, 10} is 225.
	assert.Equal(t, "225.00", got.ContributionVariance.StringFixed(2))
}

func TestPODependencyEvenSpread(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	contributions := []COContribution{
		{COCode: "CO1", Contribution: d(30)},
		{COCode: "CO2", Contribution: d(30)},
		{COCode: "CO3", Contribution: d(30)},
		{COCode: "CO4", Contribution: d(30)},
	}
	got := calc.analyzeDependencies(contributions)

	assert.Len(t, got.CriticalCOs, 2)
	assert.Equal(t, "0.5000", got.DependencyRatio.StringFixed(4))
	assert.Equal(t, DependencyLow, got.DependencyLevel)
	assert.Equal(t, "0.00", got.ContributionVariance.StringFixed(2))
}

func TestPOMemoizesCOResultsPerRequest(t *testing.T) {
	store := departmentFixture()
	store.pos["dept1"] = append(store.pos["dept1"],
		ProgramOutcome{ID: "po2", DepartmentID: "dept1", Code: "PO2", Type: "PO", Title: "Problem analysis", Target: d(70)})
	// Both POs depend on the same subject's CO.
	store.mappings["po2"] = []COMapping{
		{COID: "co1", COCode: "CO1", SubjectID: "sub1", Strength: 2},
	}
	calc := New(store, DefaultConfig())

	_, err := calc.POAttainment(context.Background(), "dept1", POFilters{})
	require.NoError(t, err)
	// One CO in the subject: its question slices are fetched exactly once
	// even though two POs consume the result.
	assert.Equal(t, 1, store.sliceCalls)
}

func TestPOUnknownDepartment(t *testing.T) {
	calc := New(newFakeStore(), DefaultConfig())

	_, err := calc.POAttainment(context.Background(), "missing", POFilters{})
	require.Error(t, err)
	var nfe *EntityNotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "department", nfe.Entity)
}

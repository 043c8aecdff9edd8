package attainment

import (
	"context"

	"github.com/shopspring/decimal"
)

// fakeStore is an in-memory Store for calculator tests.
type fakeStore struct {
	subjects    map[string]*Subject
	departments map[string]*Department
	cos         map[string][]CourseOutcome    // keyed by subject id
	exams       map[string][]Exam             // keyed by subject id
	slices      map[string][]QuestionSlice    // keyed by CO id
	pos         map[string][]ProgramOutcome   // keyed by department id
	mappings    map[string][]COMapping        // keyed by PO id
	surveys     map[string][]SurveyAggregate  // keyed by department id
	exitExams   map[string][]ExitExamAggregate

	sliceCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		subjects:    make(map[string]*Subject),
		departments: make(map[string]*Department),
		cos:         make(map[string][]CourseOutcome),
		exams:       make(map[string][]Exam),
		slices:      make(map[string][]QuestionSlice),
		pos:         make(map[string][]ProgramOutcome),
		mappings:    make(map[string][]COMapping),
		surveys:     make(map[string][]SurveyAggregate),
		exitExams:   make(map[string][]ExitExamAggregate),
	}
}

func (f *fakeStore) Subject(_ context.Context, id string) (*Subject, error) {
	return f.subjects[id], nil
}

func (f *fakeStore) Department(_ context.Context, id string) (*Department, error) {
	return f.departments[id], nil
}

func (f *fakeStore) CourseOutcomes(_ context.Context, subjectID string) ([]CourseOutcome, error) {
	return f.cos[subjectID], nil
}

func (f *fakeStore) Exams(_ context.Context, subjectID, examType string) ([]Exam, error) {
	if examType == ExamTypeAll {
		return f.exams[subjectID], nil
	}
	var filtered []Exam
	for _, e := range f.exams[subjectID] {
		if e.Type == examType {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (f *fakeStore) QuestionSlices(_ context.Context, coID string, examIDs []string) ([]QuestionSlice, error) {
	f.sliceCalls++
	inScope := make(map[string]bool, len(examIDs))
	for _, id := range examIDs {
		inScope[id] = true
	}
	var out []QuestionSlice
	for _, s := range f.slices[coID] {
		if inScope[s.ExamID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) ProgramOutcomes(_ context.Context, departmentID string) ([]ProgramOutcome, error) {
	return f.pos[departmentID], nil
}

func (f *fakeStore) Mappings(_ context.Context, poID string, _ POFilters) ([]COMapping, error) {
	return f.mappings[poID], nil
}

func (f *fakeStore) SurveyAggregates(_ context.Context, departmentID, _ string) ([]SurveyAggregate, error) {
	return f.surveys[departmentID], nil
}

func (f *fakeStore) ExitExamAggregates(_ context.Context, departmentID, _ string) ([]ExitExamAggregate, error) {
	return f.exitExams[departmentID], nil
}

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

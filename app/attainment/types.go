package attainment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExamTypeAll selects exams of every type.
const ExamTypeAll = "all"

// Status values for an outcome against its target.
const (
	StatusAchieved    = "Achieved"
	StatusNotAchieved = "Not Achieved"
)

// Trend values for a CO's per-exam attainment history.
const (
	TrendImproving    = "Improving"
	TrendDeclining    = "Declining"
	TrendStable       = "Stable"
	TrendInsufficient = "Insufficient Data"
)

// Priority tiers for gap analysis.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Difficulty levels derived from question-level attainment.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Difficult"
)

// Dependency levels for a PO's reliance on its critical COs.
const (
	DependencyHigh   = "High"
	DependencyMedium = "Medium"
	DependencyLow    = "Low"
)

// Survey question types the indirect blender distinguishes.
const QuestionTypeRating = "rating"

// Subject is the engine's view of a subject row.
type Subject struct {
	ID           string
	DepartmentID string
	Code         string
	Name         string
}

// Department is the engine's view of a department row.
type Department struct {
	ID   string
	Code string
	Name string
}

// CourseOutcome is the engine's view of a CO row. Thresholds are the
// level-1/2/3 cutoffs used to grade attainment into levels 0-3.
type CourseOutcome struct {
	ID        string
	SubjectID string
	Code      string
	Title     string
	Target    decimal.Decimal
	L1        decimal.Decimal
	L2        decimal.Decimal
	L3        decimal.Decimal
}

// ProgramOutcome is the engine's view of a PO/PSO row.
type ProgramOutcome struct {
	ID           string
	DepartmentID string
	Code         string
	Type         string
	Title        string
	Target       decimal.Decimal
}

// Exam identifies one assessment event in scope for a calculation.
type Exam struct {
	ID   string
	Name string
	Type string
	Date time.Time
}

// QuestionSlice is one question's weighted contribution to a CO: the
// question metadata, the CO weight, and the marks already summed across
// students by the store.
type QuestionSlice struct {
	ExamID         string
	QuestionID     string
	QuestionNumber string
	MaxMarks       decimal.Decimal
	WeightPct      decimal.Decimal
	ObtainedTotal  decimal.Decimal
	StudentCount   int
}

// COMapping is one CO-PO mapping row joined with the CO's identity.
type COMapping struct {
	COID      string
	COCode    string
	SubjectID string
	Strength  int
}

// POFilters narrows a PO attainment calculation.
type POFilters struct {
	SubjectID    *string
	AcademicYear *string
	Semester     *string
	ExamType     string
}

// SurveyQuestionAggregate is one survey question with its responses
// already aggregated by the store.
type SurveyQuestionAggregate struct {
	QuestionID    string
	Type          string
	ResponseCount int
	RatingSum     decimal.Decimal
}

// SurveyAggregate is one active survey with per-question response totals.
type SurveyAggregate struct {
	SurveyID  string
	Title     string
	Questions []SurveyQuestionAggregate
}

// ExitExamAggregate is one active exit exam with its average percentage
// score across all recorded results.
type ExitExamAggregate struct {
	ExamID         string
	Name           string
	AveragePercent decimal.Decimal
	ResultCount    int
}

// Store is the read-only data access the engine depends on. Lookup methods
// return (nil, nil) when the entity does not exist; the engine turns that
// into an EntityNotFoundError.
type Store interface {
	Subject(ctx context.Context, subjectID string) (*Subject, error)
	Department(ctx context.Context, departmentID string) (*Department, error)
	CourseOutcomes(ctx context.Context, subjectID string) ([]CourseOutcome, error)
	Exams(ctx context.Context, subjectID, examType string) ([]Exam, error)
	QuestionSlices(ctx context.Context, coID string, examIDs []string) ([]QuestionSlice, error)
	ProgramOutcomes(ctx context.Context, departmentID string) ([]ProgramOutcome, error)
	Mappings(ctx context.Context, poID string, f POFilters) ([]COMapping, error)
	SurveyAggregates(ctx context.Context, departmentID, academicYear string) ([]SurveyAggregate, error)
	ExitExamAggregates(ctx context.Context, departmentID, academicYear string) ([]ExitExamAggregate, error)
}

// GapAnalysis is the shortfall of attainment below target with the
// remediation priority and generated suggestions.
type GapAnalysis struct {
	Target          decimal.Decimal `json:"target"`
	Attainment      decimal.Decimal `json:"attainment"`
	Gap             decimal.Decimal `json:"gap_percentage"`
	Priority        string          `json:"priority"`
	Recommendations []string        `json:"recommendations,omitempty"`
	CriticalCOs     []string        `json:"critical_cos,omitempty"`
}

// QuestionBreakdown traces one question's weighted contribution to a CO.
type QuestionBreakdown struct {
	QuestionID       string          `json:"question_id"`
	QuestionNumber   string          `json:"question_number"`
	ExamID           string          `json:"exam_id"`
	WeightPct        decimal.Decimal `json:"weight_pct"`
	WeightedMax      decimal.Decimal `json:"weighted_max"`
	WeightedObtained decimal.Decimal `json:"weighted_obtained"`
	Attainment       decimal.Decimal `json:"attainment_percentage"`
}

// ExamBreakdown is the CO's attainment restricted to one exam.
type ExamBreakdown struct {
	ExamID     string          `json:"exam_id"`
	ExamName   string          `json:"exam_name"`
	ExamType   string          `json:"exam_type"`
	ExamDate   time.Time       `json:"exam_date"`
	Attainment decimal.Decimal `json:"attainment_percentage"`
}

// TrendAnalysis summarizes a CO's per-exam history and question spread.
type TrendAnalysis struct {
	Trend            string          `json:"trend"`
	ConsistencyScore decimal.Decimal `json:"consistency_score"`
	DifficultyLevel  string          `json:"difficulty_level"`
	StrengthAreas    []string        `json:"strength_areas,omitempty"`
	ImprovementAreas []string        `json:"improvement_areas,omitempty"`
}

// COAttainment is the full per-CO result record.
type COAttainment struct {
	COID          string              `json:"co_id"`
	Code          string              `json:"code"`
	Title         string              `json:"title"`
	Target        decimal.Decimal     `json:"target_attainment"`
	Attainment    decimal.Decimal     `json:"attainment_percentage"`
	TotalMarks    decimal.Decimal     `json:"total_marks"`
	ObtainedMarks decimal.Decimal     `json:"obtained_marks"`
	Status        string              `json:"status"`
	Level         int                 `json:"attainment_level"`
	Gap           GapAnalysis         `json:"gap_analysis"`
	Trend         TrendAnalysis       `json:"trend_analysis"`
	Exams         []ExamBreakdown     `json:"exam_breakdown"`
	Questions     []QuestionBreakdown `json:"question_breakdown"`
}

// Summary aggregates a set of outcome records.
type Summary struct {
	TotalOutcomes     int             `json:"total_outcomes"`
	AchievedCount     int             `json:"achieved_count"`
	AchievementRate   decimal.Decimal `json:"achievement_rate"`
	OverallAttainment decimal.Decimal `json:"overall_attainment"`
}

// COAttainmentResult is the outcome of one CO attainment calculation.
type COAttainmentResult struct {
	SubjectID   string         `json:"subject_id"`
	SubjectCode string         `json:"subject_code"`
	ExamType    string         `json:"exam_type"`
	Outcomes    []COAttainment `json:"outcomes"`
	Summary     Summary        `json:"summary"`
}

// COContribution is one CO's weighted contribution to a PO.
type COContribution struct {
	COID         string          `json:"co_id"`
	COCode       string          `json:"co_code"`
	SubjectID    string          `json:"subject_id"`
	Strength     int             `json:"strength"`
	Attainment   decimal.Decimal `json:"attainment_percentage"`
	Weight       decimal.Decimal `json:"weight"`
	Contribution decimal.Decimal `json:"contribution"`
}

// DependencyAnalysis identifies the COs a PO's attainment is most
// sensitive to.
type DependencyAnalysis struct {
	CriticalCOs          []string        `json:"critical_cos"`
	DependencyRatio      decimal.Decimal `json:"dependency_ratio"`
	DependencyLevel      string          `json:"dependency_level"`
	ContributionVariance decimal.Decimal `json:"contribution_variance"`
}

// POAttainment is the full per-PO result record.
type POAttainment struct {
	POID          string             `json:"po_id"`
	Code          string             `json:"code"`
	Type          string             `json:"type"`
	Title         string             `json:"title"`
	Target        decimal.Decimal    `json:"target_attainment"`
	Attainment    decimal.Decimal    `json:"attainment_percentage"`
	Status        string             `json:"status"`
	Gap           GapAnalysis        `json:"gap_analysis"`
	Contributions []COContribution   `json:"contributing_cos"`
	Dependency    DependencyAnalysis `json:"dependency_analysis"`
}

// POAttainmentResult is the outcome of one PO attainment calculation.
type POAttainmentResult struct {
	DepartmentID string         `json:"department_id"`
	ExamType     string         `json:"exam_type"`
	Outcomes     []POAttainment `json:"outcomes"`
	Summary      Summary        `json:"summary"`
}

// IndirectResult is the blended survey/exit-exam attainment figure.
// HasData is false when neither source contributed, in which case the
// attainment is a flagged zero rather than a measured value.
type IndirectResult struct {
	DepartmentID       string          `json:"department_id"`
	AcademicYear       string          `json:"academic_year,omitempty"`
	Attainment         decimal.Decimal `json:"indirect_attainment"`
	SurveyAttainment   decimal.Decimal `json:"survey_attainment"`
	ExitExamAttainment decimal.Decimal `json:"exit_exam_attainment"`
	SurveyCount        int             `json:"survey_count"`
	ExitExamCount      int             `json:"exit_exam_count"`
	HasData            bool            `json:"has_data"`
}

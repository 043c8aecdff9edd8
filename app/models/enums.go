package models

// ExamStatus defines the lifecycle states of an exam. Marks are mutable
// only while the exam is in draft.
type ExamStatus string

const (
	ExamDraft     ExamStatus = "draft"
	ExamLocked    ExamStatus = "locked"
	ExamPublished ExamStatus = "published"
)

// ExamType defines the assessment categories an exam can belong to.
type ExamType string

const (
	ExamInternal   ExamType = "internal"
	ExamExternal   ExamType = "external"
	ExamAssignment ExamType = "assignment"
	ExamQuiz       ExamType = "quiz"
)

// OutcomeType distinguishes program outcomes from program-specific ones.
type OutcomeType string

const (
	ProgramOutcomeType  OutcomeType = "PO"
	ProgramSpecificType OutcomeType = "PSO"
)

// SurveyQuestionType defines the response formats a survey question accepts.
type SurveyQuestionType string

const (
	RatingQuestion      SurveyQuestionType = "rating"
	TextQuestion        SurveyQuestionType = "text"
	CategoricalQuestion SurveyQuestionType = "categorical"
)

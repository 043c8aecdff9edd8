package models

import "time"

// QuestionCOWeight maps a question onto a CO with a percentage weight.
// The weights of one question across all its COs must sum to 100.
type QuestionCOWeight struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	QuestionID string     `json:"question_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	COID       string     `json:"co_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	WeightPct  float64    `json:"weight_pct" gorm:"not null;type:decimal(5,2)" validate:"gt=0,lte=100"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Question *Question      `json:"question,omitempty" gorm:"foreignKey:QuestionID;references:ID"`
	CO       *CourseOutcome `json:"co,omitempty" gorm:"foreignKey:COID;references:ID"`
}

// COPOMapping links a CO to a PO with a strength of 1 (low) to 3 (high).
// The strength is the aggregation weight for PO attainment.
type COPOMapping struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	COID      string     `json:"co_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	POID      string     `json:"po_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Strength  int        `json:"strength" gorm:"not null;type:integer" validate:"required,min=1,max=3"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	CO *CourseOutcome  `json:"co,omitempty" gorm:"foreignKey:COID;references:ID"`
	PO *ProgramOutcome `json:"po,omitempty" gorm:"foreignKey:POID;references:ID"`
}

// AssessmentWeight is the blending weight of one exam type for a subject.
// A subject's set of assessment weights must sum to 100.
type AssessmentWeight struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SubjectID string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExamType  ExamType   `json:"exam_type" gorm:"not null" validate:"required"`
	WeightPct float64    `json:"weight_pct" gorm:"not null;type:decimal(5,2)" validate:"gt=0,lte=100"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Subject *Subject `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

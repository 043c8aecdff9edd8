package models

import "time"

// CourseOutcome represents a measurable learning outcome of one subject.
// Codes start with "CO"; thresholds grade attainment into levels 1-3 and
// must be ordered l1 <= l2 <= l3.
type CourseOutcome struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SubjectID        string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Code             string     `json:"code" gorm:"not null" validate:"required,startswith=CO"`
	Title            string     `json:"title" gorm:"not null" validate:"required"`
	TargetAttainment float64    `json:"target_attainment" gorm:"type:decimal(5,2);default:70" validate:"gte=0,lte=100"`
	L1Threshold      float64    `json:"l1_threshold" gorm:"type:decimal(5,2);default:60" validate:"gte=0,lte=100"`
	L2Threshold      float64    `json:"l2_threshold" gorm:"type:decimal(5,2);default:70" validate:"gte=0,lte=100"`
	L3Threshold      float64    `json:"l3_threshold" gorm:"type:decimal(5,2);default:80" validate:"gte=0,lte=100"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Subject    *Subject       `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	POMappings []*COPOMapping `json:"po_mappings,omitempty" gorm:"foreignKey:COID;references:ID"`
}

// ProgramOutcome represents a PO or PSO scoped to a department's program
// and shared across all of its subjects.
type ProgramOutcome struct {
	ID               string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	DepartmentID     string      `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Code             string      `json:"code" gorm:"not null" validate:"required"`
	Type             OutcomeType `json:"type" gorm:"not null;default:'PO'" validate:"required,oneof=PO PSO"`
	Title            string      `json:"title" gorm:"not null" validate:"required"`
	TargetAttainment float64     `json:"target_attainment" gorm:"type:decimal(5,2);default:70" validate:"gte=0,lte=100"`
	CreatedAt        time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time  `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department    `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	COMappings []*COPOMapping `json:"co_mappings,omitempty" gorm:"foreignKey:POID;references:ID"`
}

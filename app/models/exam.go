package models

import "time"

// Exam represents an assessment event for a subject. Once locked or
// published its marks are stable and safe for attainment calculations.
type Exam struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SubjectID  string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name       string     `json:"name" gorm:"not null" validate:"required"`
	Type       ExamType   `json:"type" gorm:"not null;default:'internal'" validate:"required"`
	Status     ExamStatus `json:"status" gorm:"not null;default:'draft'"`
	ExamDate   time.Time  `json:"exam_date" gorm:"not null" validate:"required"`
	TotalMarks float64    `json:"total_marks" gorm:"type:decimal(6,2);default:0" validate:"gte=0"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Subject   *Subject    `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Questions []*Question `json:"questions,omitempty" gorm:"foreignKey:ExamID;references:ID"`
}

package models

import "time"

// ExitExam is an external competency exam whose scores feed indirect
// attainment for a department.
type ExitExam struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	DepartmentID string     `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	AcademicYear string     `json:"academic_year" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department       `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	Results    []*ExitExamResult `json:"results,omitempty" gorm:"foreignKey:ExitExamID;references:ID"`
}

// ExitExamResult is one student's score on an exit exam.
type ExitExamResult struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ExitExamID string    `json:"exit_exam_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID  *string   `json:"student_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Score      float64   `json:"score" gorm:"not null;type:decimal(6,2)" validate:"gte=0"`
	MaxScore   float64   `json:"max_score" gorm:"not null;type:decimal(6,2)" validate:"gt=0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	ExitExam *ExitExam `json:"exit_exam,omitempty" gorm:"foreignKey:ExitExamID;references:ID"`
	Student  *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

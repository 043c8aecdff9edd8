package models

import "time"

// Subject represents a course offered by a department in a semester
type Subject struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	DepartmentID string     `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Code         string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	Semester     int        `json:"semester" gorm:"not null;default:1" validate:"min=1,max=12"`
	AcademicYear string     `json:"academic_year" gorm:"not null"`
	Credits      int        `json:"credits" gorm:"default:3" validate:"min=0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department      `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	Outcomes   []*CourseOutcome `json:"outcomes,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Exams      []*Exam          `json:"exams,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

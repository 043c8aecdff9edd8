package models

import "time"

// Survey collects indirect attainment signals from students, alumni or
// employers for one department and academic year.
type Survey struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	DepartmentID string     `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title        string     `json:"title" gorm:"not null" validate:"required"`
	Audience     string     `json:"audience,omitempty"`
	AcademicYear string     `json:"academic_year" gorm:"not null"`
	ClosesAt     *time.Time `json:"closes_at,omitempty"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department       `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	Questions  []*SurveyQuestion `json:"questions,omitempty" gorm:"foreignKey:SurveyID;references:ID"`
}

// SurveyQuestion is one question on a survey. Rating questions are scored
// on a 1-5 scale; other types contribute a fixed policy estimate.
type SurveyQuestion struct {
	ID        string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SurveyID  string             `json:"survey_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Text      string             `json:"text" gorm:"not null" validate:"required"`
	Type      SurveyQuestionType `json:"type" gorm:"not null;default:'rating'" validate:"required,oneof=rating text categorical"`
	Position  int                `json:"position" gorm:"default:0"`
	CreatedAt time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time          `json:"updated_at" gorm:"autoUpdateTime"`

	Survey    *Survey           `json:"survey,omitempty" gorm:"foreignKey:SurveyID;references:ID"`
	Responses []*SurveyResponse `json:"responses,omitempty" gorm:"foreignKey:QuestionID;references:ID"`
}

// SurveyResponse is one respondent's answer to a survey question.
type SurveyResponse struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	QuestionID string    `json:"question_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Rating     *int      `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Answer     string    `json:"answer,omitempty"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Question *SurveyQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID;references:ID"`
}

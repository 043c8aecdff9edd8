package models

import "time"

// Question represents one question on an exam paper
type Question struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ExamID         string     `json:"exam_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuestionNumber string     `json:"question_number" gorm:"not null" validate:"required"`
	Text           string     `json:"text,omitempty"`
	MaxMarks       float64    `json:"max_marks" gorm:"not null;type:decimal(5,2)" validate:"gt=0"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Exam      *Exam               `json:"exam,omitempty" gorm:"foreignKey:ExamID;references:ID"`
	COWeights []*QuestionCOWeight `json:"co_weights,omitempty" gorm:"foreignKey:QuestionID;references:ID"`
}

package models

import "time"

// Mark stores a student's marks for one question in an exam. Marks are
// immutable once the exam leaves the draft state.
type Mark struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ExamID        string     `json:"exam_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID     string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuestionID    string     `json:"question_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MarksObtained float64    `json:"marks_obtained" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Exam     *Exam     `json:"exam,omitempty" gorm:"foreignKey:ExamID;references:ID"`
	Student  *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Question *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID;references:ID"`
}

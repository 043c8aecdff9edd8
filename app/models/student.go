package models

import "time"

// Student represents an enrolled student whose marks feed the attainment engine
type Student struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	DepartmentID string     `json:"department_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RollNumber   string     `json:"roll_number" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName    string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string     `json:"last_name" gorm:"not null" validate:"required"`
	Email        string     `json:"email,omitempty" gorm:"index" validate:"omitempty,email"`
	Semester     int        `json:"semester" gorm:"not null;default:1" validate:"min=1,max=12"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID"`
	Marks      []*Mark     `json:"marks,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

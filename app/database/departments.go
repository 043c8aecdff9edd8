package database

import (
	"database/sql"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"
)

// GetDepartments returns all active departments ordered by code.
func GetDepartments(db *sql.DB) ([]*models.Department, error) {
	query := `SELECT id, name, code, head_id, is_active, created_at, updated_at
			  FROM departments WHERE deleted_at IS NULL ORDER BY code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		d := &models.Department{}
		var headID sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &headID, &d.IsActive,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		if headID.Valid {
			d.HeadID = &headID.String
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// GetDepartmentByID returns one department.
func GetDepartmentByID(db *sql.DB, departmentID string) (*models.Department, error) {
	d := &models.Department{}
	var headID sql.NullString
	err := db.QueryRow(`
		SELECT id, name, code, head_id, is_active, created_at, updated_at
		FROM departments WHERE id = $1 AND deleted_at IS NULL`, departmentID,
	).Scan(&d.ID, &d.Name, &d.Code, &headID, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if headID.Valid {
		d.HeadID = &headID.String
	}
	return d, nil
}

// CreateDepartment inserts a department.
func CreateDepartment(db *sql.DB, d *models.Department) error {
	return db.QueryRow(`
		INSERT INTO departments (name, code, head_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		d.Name, d.Code, d.HeadID,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// UpdateDepartment updates a department's editable fields.
func UpdateDepartment(db *sql.DB, d *models.Department) error {
	_, err := db.Exec(`
		UPDATE departments SET name = $1, code = $2, head_id = $3, updated_at = now()
		WHERE id = $4 AND deleted_at IS NULL`,
		d.Name, d.Code, d.HeadID, d.ID)
	return err
}

// DeleteDepartment soft-deletes a department.
func DeleteDepartment(db *sql.DB, departmentID string) error {
	_, err := db.Exec(`UPDATE departments SET deleted_at = now() WHERE id = $1`, departmentID)
	return err
}

// GetSubjects returns all active subjects, optionally filtered by department.
func GetSubjects(db *sql.DB, departmentID string) ([]*models.Subject, error) {
	query := `SELECT id, department_id, code, name, semester, academic_year, credits, is_active, created_at, updated_at
			  FROM subjects WHERE deleted_at IS NULL`
	args := []interface{}{}
	if departmentID != "" {
		query += ` AND department_id = $1`
		args = append(args, departmentID)
	}
	query += ` ORDER BY code`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.Code, &s.Name, &s.Semester,
			&s.AcademicYear, &s.Credits, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// GetSubjectByID returns one subject.
func GetSubjectByID(db *sql.DB, subjectID string) (*models.Subject, error) {
	s := &models.Subject{}
	err := db.QueryRow(`
		SELECT id, department_id, code, name, semester, academic_year, credits, is_active, created_at, updated_at
		FROM subjects WHERE id = $1 AND deleted_at IS NULL`, subjectID,
	).Scan(&s.ID, &s.DepartmentID, &s.Code, &s.Name, &s.Semester,
		&s.AcademicYear, &s.Credits, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateSubject inserts a subject.
func CreateSubject(db *sql.DB, s *models.Subject) error {
	return db.QueryRow(`
		INSERT INTO subjects (department_id, code, name, semester, academic_year, credits)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		s.DepartmentID, s.Code, s.Name, s.Semester, s.AcademicYear, s.Credits,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateSubject updates a subject's editable fields.
func UpdateSubject(db *sql.DB, s *models.Subject) error {
	_, err := db.Exec(`
		UPDATE subjects SET name = $1, semester = $2, academic_year = $3, credits = $4, updated_at = now()
		WHERE id = $5 AND deleted_at IS NULL`,
		s.Name, s.Semester, s.AcademicYear, s.Credits, s.ID)
	return err
}

// DeleteSubject soft-deletes a subject.
func DeleteSubject(db *sql.DB, subjectID string) error {
	_, err := db.Exec(`UPDATE subjects SET deleted_at = now() WHERE id = $1`, subjectID)
	return err
}

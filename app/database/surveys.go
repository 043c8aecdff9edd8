package database

import (
	"database/sql"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"
)

// GetSurveysByDepartment returns a department's surveys, newest first.
func GetSurveysByDepartment(db *sql.DB, departmentID string) ([]*models.Survey, error) {
	query := `SELECT id, department_id, title, COALESCE(audience, ''), academic_year, closes_at, is_active, created_at, updated_at
			  FROM surveys WHERE department_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := db.Query(query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []*models.Survey
	for rows.Next() {
		s := &models.Survey{}
		var closesAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.Title, &s.Audience, &s.AcademicYear,
			&closesAt, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if closesAt.Valid {
			s.ClosesAt = &closesAt.Time
		}
		surveys = append(surveys, s)
	}
	return surveys, rows.Err()
}

// CreateSurvey inserts a survey with its questions in one transaction.
func CreateSurvey(db *sql.DB, s *models.Survey) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO surveys (department_id, title, audience, academic_year, closes_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id, created_at, updated_at`,
		s.DepartmentID, s.Title, s.Audience, s.AcademicYear, s.ClosesAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}

	for _, q := range s.Questions {
		q.SurveyID = s.ID
		err = tx.QueryRow(`
			INSERT INTO survey_questions (survey_id, text, type, position)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`,
			q.SurveyID, q.Text, q.Type, q.Position,
		).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CreateSurveyResponses stores a respondent's answers.
func CreateSurveyResponses(db *sql.DB, responses []*models.SurveyResponse) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range responses {
		if _, err := tx.Exec(`
			INSERT INTO survey_responses (question_id, rating, answer)
			VALUES ($1, $2, NULLIF($3, ''))`,
			r.QuestionID, r.Rating, r.Answer); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CloseExpiredSurveys deactivates surveys whose response window has ended.
// Returns the number of surveys closed.
func CloseExpiredSurveys(db *sql.DB) (int64, error) {
	result, err := db.Exec(`
		UPDATE surveys SET is_active = false, updated_at = now()
		WHERE is_active = true AND closes_at IS NOT NULL AND closes_at < now() AND deleted_at IS NULL`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetExitExamsByDepartment returns a department's exit exams.
func GetExitExamsByDepartment(db *sql.DB, departmentID string) ([]*models.ExitExam, error) {
	query := `SELECT id, department_id, name, academic_year, is_active, created_at, updated_at
			  FROM exit_exams WHERE department_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := db.Query(query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.ExitExam
	for rows.Next() {
		e := &models.ExitExam{}
		if err := rows.Scan(&e.ID, &e.DepartmentID, &e.Name, &e.AcademicYear, &e.IsActive,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// CreateExitExam inserts an exit exam.
func CreateExitExam(db *sql.DB, e *models.ExitExam) error {
	return db.QueryRow(`
		INSERT INTO exit_exams (department_id, name, academic_year)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		e.DepartmentID, e.Name, e.AcademicYear,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// CreateExitExamResults stores a batch of exit exam scores.
func CreateExitExamResults(db *sql.DB, results []*models.ExitExamResult) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range results {
		if _, err := tx.Exec(`
			INSERT INTO exit_exam_results (exit_exam_id, student_id, score, max_score)
			VALUES ($1, $2, $3, $4)`,
			r.ExitExamID, r.StudentID, r.Score, r.MaxScore); err != nil {
			return err
		}
	}
	return tx.Commit()
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"
)

// GetExamByID returns one exam with its subject joined in.
func GetExamByID(db *sql.DB, examID string) (*models.Exam, error) {
	query := `
		SELECT e.id, e.subject_id, e.name, e.type, e.status, e.exam_date, e.total_marks,
		       e.created_at, e.updated_at,
		       s.id, s.department_id, s.code, s.name
		FROM exams e
		JOIN subjects s ON e.subject_id = s.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var exam models.Exam
	var subject models.Subject
	err := db.QueryRow(query, examID).Scan(
		&exam.ID, &exam.SubjectID, &exam.Name, &exam.Type, &exam.Status, &exam.ExamDate, &exam.TotalMarks,
		&exam.CreatedAt, &exam.UpdatedAt,
		&subject.ID, &subject.DepartmentID, &subject.Code, &subject.Name,
	)
	if err != nil {
		return nil, err
	}
	exam.Subject = &subject
	return &exam, nil
}

// GetExamsBySubject returns a subject's exams ordered by date.
func GetExamsBySubject(db *sql.DB, subjectID string) ([]*models.Exam, error) {
	query := `SELECT id, subject_id, name, type, status, exam_date, total_marks, created_at, updated_at
			  FROM exams WHERE subject_id = $1 AND deleted_at IS NULL ORDER BY exam_date`

	rows, err := db.Query(query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(&e.ID, &e.SubjectID, &e.Name, &e.Type, &e.Status, &e.ExamDate,
			&e.TotalMarks, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// CreateExam inserts an exam in draft state.
func CreateExam(db *sql.DB, e *models.Exam) error {
	return db.QueryRow(`
		INSERT INTO exams (subject_id, name, type, exam_date, total_marks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at, updated_at`,
		e.SubjectID, e.Name, e.Type, e.ExamDate, e.TotalMarks,
	).Scan(&e.ID, &e.Status, &e.CreatedAt, &e.UpdatedAt)
}

// UpdateExamStatus moves an exam through its lifecycle (draft -> locked ->
// published). Locking is what makes the marks safe for attainment runs.
func UpdateExamStatus(db *sql.DB, examID string, status models.ExamStatus) error {
	result, err := db.Exec(`UPDATE exams SET status = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`,
		status, examID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetQuestionsByExam returns an exam's questions in paper order.
func GetQuestionsByExam(db *sql.DB, examID string) ([]*models.Question, error) {
	query := `SELECT id, exam_id, question_number, COALESCE(text, ''), max_marks, created_at, updated_at
			  FROM questions WHERE exam_id = $1 AND deleted_at IS NULL ORDER BY question_number`

	rows, err := db.Query(query, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		q := &models.Question{}
		if err := rows.Scan(&q.ID, &q.ExamID, &q.QuestionNumber, &q.Text, &q.MaxMarks,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CreateQuestion inserts a question on an exam paper.
func CreateQuestion(db *sql.DB, q *models.Question) error {
	return db.QueryRow(`
		INSERT INTO questions (exam_id, question_number, text, max_marks)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, created_at, updated_at`,
		q.ExamID, q.QuestionNumber, q.Text, q.MaxMarks,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetQuestionByID returns one question.
func GetQuestionByID(db *sql.DB, questionID string) (*models.Question, error) {
	q := &models.Question{}
	err := db.QueryRow(`
		SELECT id, exam_id, question_number, COALESCE(text, ''), max_marks, created_at, updated_at
		FROM questions WHERE id = $1 AND deleted_at IS NULL`, questionID,
	).Scan(&q.ID, &q.ExamID, &q.QuestionNumber, &q.Text, &q.MaxMarks, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// BatchUpsertMarks creates or updates a batch of marks in one transaction.
// The caller has already verified the exam is still in draft.
func BatchUpsertMarks(db *sql.DB, marks []*models.Mark) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO marks (exam_id, student_id, question_id, marks_obtained)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, question_id)
		DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained, deleted_at = NULL, updated_at = now()`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range marks {
		if _, err := stmt.Exec(m.ExamID, m.StudentID, m.QuestionID, m.MarksObtained); err != nil {
			return fmt.Errorf("failed to save mark for student %s question %s: %v", m.StudentID, m.QuestionID, err)
		}
	}
	return tx.Commit()
}

// GetMarksByExam returns all marks of one exam.
func GetMarksByExam(db *sql.DB, examID string) ([]*models.Mark, error) {
	query := `SELECT id, exam_id, student_id, question_id, marks_obtained, created_at, updated_at
			  FROM marks WHERE exam_id = $1 AND deleted_at IS NULL`

	rows, err := db.Query(query, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.Mark
	for rows.Next() {
		m := &models.Mark{}
		if err := rows.Scan(&m.ID, &m.ExamID, &m.StudentID, &m.QuestionID, &m.MarksObtained,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

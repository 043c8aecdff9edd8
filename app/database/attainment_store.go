package database

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/attainment"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// AttainmentStore adapts the SQL layer to the attainment engine. All reads
// are scoped to published exams and soft-delete aware; aggregation happens
// in SQL so the engine only sees summed figures.
type AttainmentStore struct {
	db *sql.DB
}

// NewAttainmentStore wraps a database handle for the engine.
func NewAttainmentStore(db *sql.DB) *AttainmentStore {
	return &AttainmentStore{db: db}
}

func (s *AttainmentStore) Subject(ctx context.Context, subjectID string) (*attainment.Subject, error) {
	sub := &attainment.Subject{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, department_id, code, name
		FROM subjects WHERE id = $1 AND deleted_at IS NULL`, subjectID,
	).Scan(&sub.ID, &sub.DepartmentID, &sub.Code, &sub.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *AttainmentStore) Department(ctx context.Context, departmentID string) (*attainment.Department, error) {
	dept := &attainment.Department{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, code, name
		FROM departments WHERE id = $1 AND deleted_at IS NULL`, departmentID,
	).Scan(&dept.ID, &dept.Code, &dept.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *AttainmentStore) CourseOutcomes(ctx context.Context, subjectID string) ([]attainment.CourseOutcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject_id, code, title, target_attainment, l1_threshold, l2_threshold, l3_threshold
		FROM course_outcomes WHERE subject_id = $1 AND deleted_at IS NULL
		ORDER BY code`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []attainment.CourseOutcome
	for rows.Next() {
		var co attainment.CourseOutcome
		if err := rows.Scan(&co.ID, &co.SubjectID, &co.Code, &co.Title,
			&co.Target, &co.L1, &co.L2, &co.L3); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, co)
	}
	return outcomes, rows.Err()
}

func (s *AttainmentStore) Exams(ctx context.Context, subjectID, examType string) ([]attainment.Exam, error) {
	query := `SELECT id, name, type, exam_date
			  FROM exams
			  WHERE subject_id = $1 AND status = 'published' AND deleted_at IS NULL`
	args := []interface{}{subjectID}
	if examType != attainment.ExamTypeAll {
		query += ` AND type = $2`
		args = append(args, examType)
	}
	query += ` ORDER BY exam_date`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []attainment.Exam
	for rows.Next() {
		var e attainment.Exam
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Date); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func (s *AttainmentStore) QuestionSlices(ctx context.Context, coID string, examIDs []string) ([]attainment.QuestionSlice, error) {
	if len(examIDs) == 0 {
		return nil, nil
	}

	// Marks are summed per question here so the engine works on totals
	// rather than per-student rows.
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, q.id, q.question_number, q.max_marks, w.weight_pct,
		       COALESCE(SUM(m.marks_obtained), 0), COUNT(m.id)
		FROM question_co_weights w
		JOIN questions q ON w.question_id = q.id AND q.deleted_at IS NULL
		JOIN exams e ON q.exam_id = e.id
		LEFT JOIN marks m ON m.question_id = q.id AND m.deleted_at IS NULL
		WHERE w.co_id = $1 AND w.deleted_at IS NULL AND e.id = ANY($2)
		GROUP BY e.id, e.exam_date, q.id, q.question_number, q.max_marks, w.weight_pct
		ORDER BY e.exam_date, q.question_number`,
		coID, pq.Array(examIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slices []attainment.QuestionSlice
	for rows.Next() {
		var qs attainment.QuestionSlice
		if err := rows.Scan(&qs.ExamID, &qs.QuestionID, &qs.QuestionNumber,
			&qs.MaxMarks, &qs.WeightPct, &qs.ObtainedTotal, &qs.StudentCount); err != nil {
			return nil, err
		}
		slices = append(slices, qs)
	}
	return slices, rows.Err()
}

func (s *AttainmentStore) ProgramOutcomes(ctx context.Context, departmentID string) ([]attainment.ProgramOutcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, department_id, code, type, title, target_attainment
		FROM program_outcomes WHERE department_id = $1 AND deleted_at IS NULL
		ORDER BY type, code`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []attainment.ProgramOutcome
	for rows.Next() {
		var po attainment.ProgramOutcome
		if err := rows.Scan(&po.ID, &po.DepartmentID, &po.Code, &po.Type, &po.Title, &po.Target); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, po)
	}
	return outcomes, rows.Err()
}

func (s *AttainmentStore) Mappings(ctx context.Context, poID string, f attainment.POFilters) ([]attainment.COMapping, error) {
	query := `
		SELECT m.co_id, co.code, co.subject_id, m.strength
		FROM co_po_mappings m
		JOIN course_outcomes co ON m.co_id = co.id AND co.deleted_at IS NULL
		JOIN subjects sub ON co.subject_id = sub.id AND sub.deleted_at IS NULL
		WHERE m.po_id = $1 AND m.deleted_at IS NULL`
	args := []interface{}{poID}

	if f.SubjectID != nil {
		args = append(args, *f.SubjectID)
		query += ` AND sub.id = $` + strconv.Itoa(len(args))
	}
	if f.AcademicYear != nil {
		args = append(args, *f.AcademicYear)
		query += ` AND sub.academic_year = $` + strconv.Itoa(len(args))
	}
	if f.Semester != nil {
		args = append(args, *f.Semester)
		query += ` AND sub.semester::text = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY sub.code, co.code`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []attainment.COMapping
	for rows.Next() {
		var m attainment.COMapping
		if err := rows.Scan(&m.COID, &m.COCode, &m.SubjectID, &m.Strength); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

func (s *AttainmentStore) SurveyAggregates(ctx context.Context, departmentID, academicYear string) ([]attainment.SurveyAggregate, error) {
	query := `
		SELECT sv.id, sv.title, q.id, q.type, COUNT(r.id), COALESCE(SUM(r.rating), 0)
		FROM surveys sv
		JOIN survey_questions q ON q.survey_id = sv.id
		LEFT JOIN survey_responses r ON r.question_id = q.id
		WHERE sv.department_id = $1 AND sv.is_active = true AND sv.deleted_at IS NULL`
	args := []interface{}{departmentID}
	if academicYear != "" {
		args = append(args, academicYear)
		query += ` AND sv.academic_year = $2`
	}
	query += ` GROUP BY sv.id, sv.title, sv.created_at, q.id, q.type, q.position
			   ORDER BY sv.created_at, q.position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggregates []attainment.SurveyAggregate
	index := map[string]int{}
	for rows.Next() {
		var surveyID, title string
		var q attainment.SurveyQuestionAggregate
		if err := rows.Scan(&surveyID, &title, &q.QuestionID, &q.Type, &q.ResponseCount, &q.RatingSum); err != nil {
			return nil, err
		}
		i, ok := index[surveyID]
		if !ok {
			i = len(aggregates)
			index[surveyID] = i
			aggregates = append(aggregates, attainment.SurveyAggregate{SurveyID: surveyID, Title: title})
		}
		aggregates[i].Questions = append(aggregates[i].Questions, q)
	}
	return aggregates, rows.Err()
}

func (s *AttainmentStore) ExitExamAggregates(ctx context.Context, departmentID, academicYear string) ([]attainment.ExitExamAggregate, error) {
	query := `
		SELECT x.id, x.name,
		       COALESCE(AVG(r.score / NULLIF(r.max_score, 0) * 100), 0),
		       COUNT(r.id)
		FROM exit_exams x
		LEFT JOIN exit_exam_results r ON r.exit_exam_id = x.id
		WHERE x.department_id = $1 AND x.is_active = true AND x.deleted_at IS NULL`
	args := []interface{}{departmentID}
	if academicYear != "" {
		args = append(args, academicYear)
		query += ` AND x.academic_year = $2`
	}
	query += ` GROUP BY x.id, x.name, x.created_at ORDER BY x.created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggregates []attainment.ExitExamAggregate
	for rows.Next() {
		var a attainment.ExitExamAggregate
		var avg decimal.Decimal
		if err := rows.Scan(&a.ExamID, &a.Name, &avg, &a.ResultCount); err != nil {
			return nil, err
		}
		a.AveragePercent = avg.Round(2)
		aggregates = append(aggregates, a)
	}
	return aggregates, rows.Err()
}


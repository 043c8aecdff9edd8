package database

import (
	"database/sql"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"
)

// GetCourseOutcomesBySubject returns the COs of a subject ordered by code.
func GetCourseOutcomesBySubject(db *sql.DB, subjectID string) ([]*models.CourseOutcome, error) {
	query := `SELECT id, subject_id, code, title, target_attainment, l1_threshold, l2_threshold, l3_threshold, created_at, updated_at
			  FROM course_outcomes WHERE subject_id = $1 AND deleted_at IS NULL ORDER BY code`

	rows, err := db.Query(query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []*models.CourseOutcome
	for rows.Next() {
		co := &models.CourseOutcome{}
		if err := rows.Scan(&co.ID, &co.SubjectID, &co.Code, &co.Title, &co.TargetAttainment,
			&co.L1Threshold, &co.L2Threshold, &co.L3Threshold, &co.CreatedAt, &co.UpdatedAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, co)
	}
	return outcomes, rows.Err()
}

// CreateCourseOutcome inserts a CO for a subject.
func CreateCourseOutcome(db *sql.DB, co *models.CourseOutcome) error {
	return db.QueryRow(`
		INSERT INTO course_outcomes (subject_id, code, title, target_attainment, l1_threshold, l2_threshold, l3_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		co.SubjectID, co.Code, co.Title, co.TargetAttainment, co.L1Threshold, co.L2Threshold, co.L3Threshold,
	).Scan(&co.ID, &co.CreatedAt, &co.UpdatedAt)
}

// UpdateCourseOutcome updates a CO's editable fields.
func UpdateCourseOutcome(db *sql.DB, co *models.CourseOutcome) error {
	_, err := db.Exec(`
		UPDATE course_outcomes
		SET title = $1, target_attainment = $2, l1_threshold = $3, l2_threshold = $4, l3_threshold = $5, updated_at = now()
		WHERE id = $6 AND deleted_at IS NULL`,
		co.Title, co.TargetAttainment, co.L1Threshold, co.L2Threshold, co.L3Threshold, co.ID)
	return err
}

// DeleteCourseOutcome soft-deletes a CO.
func DeleteCourseOutcome(db *sql.DB, coID string) error {
	_, err := db.Exec(`UPDATE course_outcomes SET deleted_at = now() WHERE id = $1`, coID)
	return err
}

// GetProgramOutcomesByDepartment returns a department's POs/PSOs ordered by code.
func GetProgramOutcomesByDepartment(db *sql.DB, departmentID string) ([]*models.ProgramOutcome, error) {
	query := `SELECT id, department_id, code, type, title, target_attainment, created_at, updated_at
			  FROM program_outcomes WHERE department_id = $1 AND deleted_at IS NULL ORDER BY type, code`

	rows, err := db.Query(query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []*models.ProgramOutcome
	for rows.Next() {
		po := &models.ProgramOutcome{}
		if err := rows.Scan(&po.ID, &po.DepartmentID, &po.Code, &po.Type, &po.Title,
			&po.TargetAttainment, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, po)
	}
	return outcomes, rows.Err()
}

// CreateProgramOutcome inserts a PO/PSO for a department.
func CreateProgramOutcome(db *sql.DB, po *models.ProgramOutcome) error {
	return db.QueryRow(`
		INSERT INTO program_outcomes (department_id, code, type, title, target_attainment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		po.DepartmentID, po.Code, po.Type, po.Title, po.TargetAttainment,
	).Scan(&po.ID, &po.CreatedAt, &po.UpdatedAt)
}

// DeleteProgramOutcome soft-deletes a PO.
func DeleteProgramOutcome(db *sql.DB, poID string) error {
	_, err := db.Exec(`UPDATE program_outcomes SET deleted_at = now() WHERE id = $1`, poID)
	return err
}

// GetCOPOMappingsByPO returns the CO-PO mappings of one PO.
func GetCOPOMappingsByPO(db *sql.DB, poID string) ([]*models.COPOMapping, error) {
	query := `SELECT m.id, m.co_id, m.po_id, m.strength, m.created_at, m.updated_at
			  FROM co_po_mappings m
			  JOIN course_outcomes co ON m.co_id = co.id AND co.deleted_at IS NULL
			  WHERE m.po_id = $1 AND m.deleted_at IS NULL
			  ORDER BY co.code`

	rows, err := db.Query(query, poID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []*models.COPOMapping
	for rows.Next() {
		m := &models.COPOMapping{}
		if err := rows.Scan(&m.ID, &m.COID, &m.POID, &m.Strength, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// UpsertCOPOMapping creates or updates the strength of a CO-PO mapping.
func UpsertCOPOMapping(db *sql.DB, m *models.COPOMapping) error {
	return db.QueryRow(`
		INSERT INTO co_po_mappings (co_id, po_id, strength)
		VALUES ($1, $2, $3)
		ON CONFLICT (co_id, po_id) DO UPDATE SET strength = EXCLUDED.strength, deleted_at = NULL, updated_at = now()
		RETURNING id, created_at, updated_at`,
		m.COID, m.POID, m.Strength,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// DeleteCOPOMapping soft-deletes a mapping.
func DeleteCOPOMapping(db *sql.DB, mappingID string) error {
	_, err := db.Exec(`UPDATE co_po_mappings SET deleted_at = now() WHERE id = $1`, mappingID)
	return err
}

// GetQuestionCOWeights returns the CO weight set of one question.
func GetQuestionCOWeights(db *sql.DB, questionID string) ([]*models.QuestionCOWeight, error) {
	query := `SELECT id, question_id, co_id, weight_pct, created_at, updated_at
			  FROM question_co_weights WHERE question_id = $1 AND deleted_at IS NULL`

	rows, err := db.Query(query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weights []*models.QuestionCOWeight
	for rows.Next() {
		w := &models.QuestionCOWeight{}
		if err := rows.Scan(&w.ID, &w.QuestionID, &w.COID, &w.WeightPct, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}
	return weights, rows.Err()
}

// ReplaceQuestionCOWeights replaces a question's weight set in one
// transaction. Callers validate the set through the engine first.
func ReplaceQuestionCOWeights(db *sql.DB, questionID string, weights []*models.QuestionCOWeight) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM question_co_weights WHERE question_id = $1`, questionID); err != nil {
		return err
	}
	for _, w := range weights {
		if _, err := tx.Exec(`
			INSERT INTO question_co_weights (question_id, co_id, weight_pct)
			VALUES ($1, $2, $3)`,
			questionID, w.COID, w.WeightPct); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetAssessmentWeights returns a subject's exam-type weight set.
func GetAssessmentWeights(db *sql.DB, subjectID string) ([]*models.AssessmentWeight, error) {
	query := `SELECT id, subject_id, exam_type, weight_pct, created_at, updated_at
			  FROM assessment_weights WHERE subject_id = $1 AND deleted_at IS NULL ORDER BY exam_type`

	rows, err := db.Query(query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weights []*models.AssessmentWeight
	for rows.Next() {
		w := &models.AssessmentWeight{}
		if err := rows.Scan(&w.ID, &w.SubjectID, &w.ExamType, &w.WeightPct, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}
	return weights, rows.Err()
}

// ReplaceAssessmentWeights replaces a subject's assessment weight set.
func ReplaceAssessmentWeights(db *sql.DB, subjectID string, weights []*models.AssessmentWeight) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM assessment_weights WHERE subject_id = $1`, subjectID); err != nil {
		return err
	}
	for _, w := range weights {
		if _, err := tx.Exec(`
			INSERT INTO assessment_weights (subject_id, exam_type, weight_pct)
			VALUES ($1, $2, $3)`,
			subjectID, w.ExamType, w.WeightPct); err != nil {
			return err
		}
	}
	return tx.Commit()
}

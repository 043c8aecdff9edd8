package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and seeds the
// default roles. All statements are idempotent so the app can run them on
// every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			code TEXT UNIQUE NOT NULL,
			head_id UUID REFERENCES users(id),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			department_id UUID NOT NULL REFERENCES departments(id),
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			semester INTEGER NOT NULL DEFAULT 1,
			academic_year TEXT NOT NULL DEFAULT '',
			credits INTEGER DEFAULT 3,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			department_id UUID NOT NULL REFERENCES departments(id),
			roll_number TEXT UNIQUE NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT,
			semester INTEGER NOT NULL DEFAULT 1,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'internal',
			status TEXT NOT NULL DEFAULT 'draft',
			exam_date TIMESTAMPTZ NOT NULL,
			total_marks DECIMAL(6,2) DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS questions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_id UUID NOT NULL REFERENCES exams(id),
			question_number TEXT NOT NULL,
			text TEXT,
			max_marks DECIMAL(5,2) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (exam_id, question_number)
		)`,

		`CREATE TABLE IF NOT EXISTS marks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_id UUID NOT NULL REFERENCES exams(id),
			student_id UUID NOT NULL REFERENCES students(id),
			question_id UUID NOT NULL REFERENCES questions(id),
			marks_obtained DECIMAL(5,2) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (student_id, question_id)
		)`,

		`CREATE TABLE IF NOT EXISTS course_outcomes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			code TEXT NOT NULL,
			title TEXT NOT NULL,
			target_attainment DECIMAL(5,2) DEFAULT 70,
			l1_threshold DECIMAL(5,2) DEFAULT 60,
			l2_threshold DECIMAL(5,2) DEFAULT 70,
			l3_threshold DECIMAL(5,2) DEFAULT 80,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (subject_id, code)
		)`,

		`CREATE TABLE IF NOT EXISTS program_outcomes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			department_id UUID NOT NULL REFERENCES departments(id),
			code TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'PO',
			title TEXT NOT NULL,
			target_attainment DECIMAL(5,2) DEFAULT 70,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (department_id, code)
		)`,

		`CREATE TABLE IF NOT EXISTS question_co_weights (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			question_id UUID NOT NULL REFERENCES questions(id),
			co_id UUID NOT NULL REFERENCES course_outcomes(id),
			weight_pct DECIMAL(5,2) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (question_id, co_id)
		)`,

		`CREATE TABLE IF NOT EXISTS co_po_mappings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			co_id UUID NOT NULL REFERENCES course_outcomes(id),
			po_id UUID NOT NULL REFERENCES program_outcomes(id),
			strength INTEGER NOT NULL CHECK (strength BETWEEN 1 AND 3),
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (co_id, po_id)
		)`,

		`CREATE TABLE IF NOT EXISTS assessment_weights (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			exam_type TEXT NOT NULL,
			weight_pct DECIMAL(5,2) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (subject_id, exam_type)
		)`,

		`CREATE TABLE IF NOT EXISTS surveys (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			department_id UUID NOT NULL REFERENCES departments(id),
			title TEXT NOT NULL,
			audience TEXT,
			academic_year TEXT NOT NULL DEFAULT '',
			closes_at TIMESTAMPTZ,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS survey_questions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			survey_id UUID NOT NULL REFERENCES surveys(id),
			text TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'rating',
			position INTEGER DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS survey_responses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			question_id UUID NOT NULL REFERENCES survey_questions(id),
			rating INTEGER CHECK (rating BETWEEN 1 AND 5),
			answer TEXT,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS exit_exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			department_id UUID NOT NULL REFERENCES departments(id),
			name TEXT NOT NULL,
			academic_year TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS exit_exam_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exit_exam_id UUID NOT NULL REFERENCES exit_exams(id),
			student_id UUID REFERENCES students(id),
			score DECIMAL(6,2) NOT NULL,
			max_score DECIMAL(6,2) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now()
		)`,

		`INSERT INTO roles (name) VALUES ('admin'), ('hod'), ('teacher'), ('coordinator')
		 ON CONFLICT (name) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.is_active, r.created_at, r.updated_at
			  FROM roles r
			  JOIN user_roles ur ON r.id = ur.role_id
			  WHERE ur.user_id = $1 AND r.is_active = true AND ur.deleted_at IS NULL`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.IsActive, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = now() WHERE id = $2`, hashedPassword, userID)
	return err
}

// CreateUser inserts a user with a hashed password and assigns the given role.
func CreateUser(db *sql.DB, user *models.User, roleName string) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	err = db.QueryRow(`
		INSERT INTO users (email, password, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		user.Email, hashed, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}

	if roleName == "" {
		return nil
	}
	_, err = db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT (user_id, role_id) DO NOTHING`,
		user.ID, roleName)
	if err != nil {
		return fmt.Errorf("failed to assign role %s: %v", roleName, err)
	}
	return nil
}

// GetStudentsByDepartment returns active students of a department.
func GetStudentsByDepartment(db *sql.DB, departmentID string) ([]*models.Student, error) {
	query := `SELECT id, department_id, roll_number, first_name, last_name, COALESCE(email, ''), semester, is_active, created_at, updated_at
			  FROM students WHERE department_id = $1 AND deleted_at IS NULL ORDER BY roll_number`

	rows, err := db.Query(query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.RollNumber, &s.FirstName, &s.LastName,
			&s.Email, &s.Semester, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CreateStudent inserts a new student row.
func CreateStudent(db *sql.DB, s *models.Student) error {
	return db.QueryRow(`
		INSERT INTO students (department_id, roll_number, first_name, last_name, email, semester)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at, updated_at`,
		s.DepartmentID, s.RollNumber, s.FirstName, s.LastName, s.Email, s.Semester,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

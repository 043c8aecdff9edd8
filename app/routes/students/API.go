package students

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	departmentID := c.Query("department_id")
	if departmentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "department_id is required"})
	}

	students, err := database.GetStudentsByDepartment(config.GetDB(), departmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		DepartmentID string `json:"department_id" validate:"required,uuid"`
		RollNumber   string `json:"roll_number" validate:"required"`
		FirstName    string `json:"first_name" validate:"required"`
		LastName     string `json:"last_name" validate:"required"`
		Email        string `json:"email" validate:"omitempty,email"`
		Semester     int    `json:"semester" validate:"min=1,max=12"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		DepartmentID: req.DepartmentID,
		RollNumber:   req.RollNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Semester:     req.Semester,
	}
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(fiber.Map{"student": student})
}

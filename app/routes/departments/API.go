package departments

import (
	"database/sql"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.GetDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get departments"})
	}
	return c.JSON(fiber.Map{"departments": departments})
}

func GetDepartmentAPI(c *fiber.Ctx) error {
	department, err := database.GetDepartmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"department": department})
}

func CreateDepartmentAPI(c *fiber.Ctx) error {
	type CreateDepartmentRequest struct {
		Name   string  `json:"name" validate:"required"`
		Code   string  `json:"code" validate:"required"`
		HeadID *string `json:"head_id" validate:"omitempty,uuid"`
	}

	var req CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	department := &models.Department{Name: req.Name, Code: req.Code, HeadID: req.HeadID}
	if err := database.CreateDepartment(config.GetDB(), department); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create department"})
	}
	return c.Status(201).JSON(fiber.Map{"department": department})
}

func UpdateDepartmentAPI(c *fiber.Ctx) error {
	type UpdateDepartmentRequest struct {
		Name   string  `json:"name" validate:"required"`
		Code   string  `json:"code" validate:"required"`
		HeadID *string `json:"head_id" validate:"omitempty,uuid"`
	}

	var req UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	department := &models.Department{ID: c.Params("id"), Name: req.Name, Code: req.Code, HeadID: req.HeadID}
	if err := database.UpdateDepartment(config.GetDB(), department); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}
	return c.JSON(fiber.Map{"message": "Department updated successfully"})
}

func DeleteDepartmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteDepartment(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete department"})
	}
	return c.JSON(fiber.Map{"message": "Department deleted successfully"})
}

func GetProgramOutcomesAPI(c *fiber.Ctx) error {
	outcomes, err := database.GetProgramOutcomesByDepartment(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get program outcomes"})
	}
	return c.JSON(fiber.Map{"program_outcomes": outcomes})
}

func CreateProgramOutcomeAPI(c *fiber.Ctx) error {
	type CreateProgramOutcomeRequest struct {
		Code             string  `json:"code" validate:"required"`
		Type             string  `json:"type" validate:"required,oneof=PO PSO"`
		Title            string  `json:"title" validate:"required"`
		TargetAttainment float64 `json:"target_attainment" validate:"min=0,max=100"`
	}

	var req CreateProgramOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	po := &models.ProgramOutcome{
		DepartmentID:     c.Params("id"),
		Code:             req.Code,
		Type:             models.OutcomeType(req.Type),
		Title:            req.Title,
		TargetAttainment: req.TargetAttainment,
	}
	if po.TargetAttainment == 0 {
		po.TargetAttainment = 70
	}
	if err := database.CreateProgramOutcome(config.GetDB(), po); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create program outcome"})
	}
	return c.Status(201).JSON(fiber.Map{"program_outcome": po})
}

func DeleteProgramOutcomeAPI(c *fiber.Ctx) error {
	if err := database.DeleteProgramOutcome(config.GetDB(), c.Params("poId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete program outcome"})
	}
	return c.JSON(fiber.Map{"message": "Program outcome deleted successfully"})
}

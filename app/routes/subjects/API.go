package subjects

import (
	"database/sql"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/attainment"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetSubjects(config.GetDB(), c.Query("department_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	subject, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"subject": subject})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type CreateSubjectRequest struct {
		DepartmentID string `json:"department_id" validate:"required,uuid"`
		Code         string `json:"code" validate:"required"`
		Name         string `json:"name" validate:"required"`
		Semester     int    `json:"semester" validate:"min=1,max=12"`
		AcademicYear string `json:"academic_year" validate:"required"`
		Credits      int    `json:"credits" validate:"min=0"`
	}

	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{
		DepartmentID: req.DepartmentID,
		Code:         req.Code,
		Name:         req.Name,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Credits:      req.Credits,
	}
	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(201).JSON(fiber.Map{"subject": subject})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	type UpdateSubjectRequest struct {
		Name         string `json:"name" validate:"required"`
		Semester     int    `json:"semester" validate:"min=1,max=12"`
		AcademicYear string `json:"academic_year" validate:"required"`
		Credits      int    `json:"credits" validate:"min=0"`
	}

	var req UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{
		ID:           c.Params("id"),
		Name:         req.Name,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Credits:      req.Credits,
	}
	if err := database.UpdateSubject(config.GetDB(), subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject updated successfully"})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	if err := database.DeleteSubject(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

func GetCourseOutcomesAPI(c *fiber.Ctx) error {
	outcomes, err := database.GetCourseOutcomesBySubject(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get course outcomes"})
	}
	return c.JSON(fiber.Map{"course_outcomes": outcomes})
}

func CreateCourseOutcomeAPI(c *fiber.Ctx) error {
	type CreateCourseOutcomeRequest struct {
		Code             string  `json:"code" validate:"required,startswith=CO"`
		Title            string  `json:"title" validate:"required"`
		TargetAttainment float64 `json:"target_attainment" validate:"min=0,max=100"`
		L1Threshold      float64 `json:"l1_threshold" validate:"min=0,max=100"`
		L2Threshold      float64 `json:"l2_threshold" validate:"min=0,max=100"`
		L3Threshold      float64 `json:"l3_threshold" validate:"min=0,max=100"`
	}

	var req CreateCourseOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	co := &models.CourseOutcome{
		SubjectID:        c.Params("id"),
		Code:             req.Code,
		Title:            req.Title,
		TargetAttainment: req.TargetAttainment,
		L1Threshold:      req.L1Threshold,
		L2Threshold:      req.L2Threshold,
		L3Threshold:      req.L3Threshold,
	}
	if co.TargetAttainment == 0 {
		co.TargetAttainment = 70
	}
	if co.L1Threshold == 0 && co.L2Threshold == 0 && co.L3Threshold == 0 {
		co.L1Threshold, co.L2Threshold, co.L3Threshold = 60, 70, 80
	}
	if co.L1Threshold > co.L2Threshold || co.L2Threshold > co.L3Threshold {
		return c.Status(400).JSON(fiber.Map{"error": "Thresholds must be ordered l1 <= l2 <= l3"})
	}

	if err := database.CreateCourseOutcome(config.GetDB(), co); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course outcome"})
	}
	return c.Status(201).JSON(fiber.Map{"course_outcome": co})
}

func UpdateCourseOutcomeAPI(c *fiber.Ctx) error {
	type UpdateCourseOutcomeRequest struct {
		Title            string  `json:"title" validate:"required"`
		TargetAttainment float64 `json:"target_attainment" validate:"min=0,max=100"`
		L1Threshold      float64 `json:"l1_threshold" validate:"min=0,max=100"`
		L2Threshold      float64 `json:"l2_threshold" validate:"min=0,max=100"`
		L3Threshold      float64 `json:"l3_threshold" validate:"min=0,max=100"`
	}

	var req UpdateCourseOutcomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.L1Threshold > req.L2Threshold || req.L2Threshold > req.L3Threshold {
		return c.Status(400).JSON(fiber.Map{"error": "Thresholds must be ordered l1 <= l2 <= l3"})
	}

	co := &models.CourseOutcome{
		ID:               c.Params("coId"),
		Title:            req.Title,
		TargetAttainment: req.TargetAttainment,
		L1Threshold:      req.L1Threshold,
		L2Threshold:      req.L2Threshold,
		L3Threshold:      req.L3Threshold,
	}
	if err := database.UpdateCourseOutcome(config.GetDB(), co); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update course outcome"})
	}
	return c.JSON(fiber.Map{"message": "Course outcome updated successfully"})
}

func DeleteCourseOutcomeAPI(c *fiber.Ctx) error {
	if err := database.DeleteCourseOutcome(config.GetDB(), c.Params("coId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete course outcome"})
	}
	return c.JSON(fiber.Map{"message": "Course outcome deleted successfully"})
}

func GetAssessmentWeightsAPI(c *fiber.Ctx) error {
	weights, err := database.GetAssessmentWeights(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get assessment weights"})
	}
	return c.JSON(fiber.Map{"assessment_weights": weights})
}

// ReplaceAssessmentWeightsAPI replaces a subject's exam-type weight set.
// The set must sum to 100 before it is persisted.
func ReplaceAssessmentWeightsAPI(c *fiber.Ctx) error {
	type WeightEntry struct {
		ExamType  string  `json:"exam_type" validate:"required,oneof=internal external assignment quiz"`
		WeightPct float64 `json:"weight_pct" validate:"gt=0,lte=100"`
	}
	type ReplaceWeightsRequest struct {
		Weights []WeightEntry `json:"weights" validate:"required,min=1,dive"`
	}

	var req ReplaceWeightsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subjectID := c.Params("id")
	pcts := make([]decimal.Decimal, len(req.Weights))
	weights := make([]*models.AssessmentWeight, len(req.Weights))
	for i, w := range req.Weights {
		pcts[i] = decimal.NewFromFloat(w.WeightPct)
		weights[i] = &models.AssessmentWeight{
			SubjectID: subjectID,
			ExamType:  models.ExamType(w.ExamType),
			WeightPct: w.WeightPct,
		}
	}

	cfg := attainment.DefaultConfig()
	if err := attainment.ValidateWeights("subject "+subjectID, pcts, cfg.WeightTolerance); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.ReplaceAssessmentWeights(config.GetDB(), subjectID, weights); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save assessment weights"})
	}
	return c.JSON(fiber.Map{"message": "Assessment weights saved successfully"})
}

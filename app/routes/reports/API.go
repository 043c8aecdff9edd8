package reports

import (
	"errors"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/attainment"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// validID rejects malformed UUIDs before they reach the engine, so a
// typo'd URL reads as a 400 rather than a 404.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// newCalculator builds a fresh engine per request. Results are never cached
// across requests; marks can change between calls.
func newCalculator() *attainment.Calculator {
	store := database.NewAttainmentStore(config.GetDB())
	return attainment.New(store, attainment.DefaultConfig())
}

func renderEngineError(c *fiber.Ctx, err error) error {
	var notFound *attainment.EntityNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(404).JSON(fiber.Map{"error": notFound.Error()})
	}
	var weightSum *attainment.WeightSumError
	if errors.As(err, &weightSum) {
		return c.Status(400).JSON(fiber.Map{"error": weightSum.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Attainment calculation failed"})
}

// COAttainmentAPI computes CO attainment for one subject, optionally
// restricted to one exam type via ?exam_type=.
func COAttainmentAPI(c *fiber.Ctx) error {
	subjectID := c.Params("subjectId")
	if !validID(subjectID) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
	}
	examType := c.Query("exam_type", attainment.ExamTypeAll)

	result, err := newCalculator().COAttainment(c.Context(), subjectID, examType)
	if err != nil {
		return renderEngineError(c, err)
	}
	return c.JSON(result)
}

// POAttainmentAPI computes PO/PSO attainment for one department. Optional
// query filters: subject_id, academic_year, semester, exam_type.
func POAttainmentAPI(c *fiber.Ctx) error {
	departmentID := c.Params("departmentId")
	if !validID(departmentID) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department id"})
	}

	filters := attainment.POFilters{ExamType: c.Query("exam_type", attainment.ExamTypeAll)}
	if v := c.Query("subject_id"); v != "" {
		filters.SubjectID = &v
	}
	if v := c.Query("academic_year"); v != "" {
		filters.AcademicYear = &v
	}
	if v := c.Query("semester"); v != "" {
		filters.Semester = &v
	}

	result, err := newCalculator().POAttainment(c.Context(), departmentID, filters)
	if err != nil {
		return renderEngineError(c, err)
	}
	return c.JSON(result)
}

// IndirectAttainmentAPI blends survey and exit-exam signals for one
// department, optionally restricted to ?academic_year=.
func IndirectAttainmentAPI(c *fiber.Ctx) error {
	departmentID := c.Params("departmentId")
	if !validID(departmentID) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department id"})
	}

	result, err := newCalculator().IndirectAttainment(c.Context(), departmentID, c.Query("academic_year"))
	if err != nil {
		return renderEngineError(c, err)
	}
	return c.JSON(result)
}

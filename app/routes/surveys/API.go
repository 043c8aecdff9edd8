package surveys

import (
	"time"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetSurveysAPI(c *fiber.Ctx) error {
	departmentID := c.Query("department_id")
	if departmentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "department_id is required"})
	}

	surveys, err := database.GetSurveysByDepartment(config.GetDB(), departmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get surveys"})
	}
	return c.JSON(fiber.Map{"surveys": surveys})
}

func CreateSurveyAPI(c *fiber.Ctx) error {
	type QuestionEntry struct {
		Text     string `json:"text" validate:"required"`
		Type     string `json:"type" validate:"required,oneof=rating text categorical"`
		Position int    `json:"position"`
	}
	type CreateSurveyRequest struct {
		DepartmentID string          `json:"department_id" validate:"required,uuid"`
		Title        string          `json:"title" validate:"required"`
		Audience     string          `json:"audience"`
		AcademicYear string          `json:"academic_year" validate:"required"`
		ClosesAt     *time.Time      `json:"closes_at"`
		Questions    []QuestionEntry `json:"questions" validate:"required,min=1,dive"`
	}

	var req CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	survey := &models.Survey{
		DepartmentID: req.DepartmentID,
		Title:        req.Title,
		Audience:     req.Audience,
		AcademicYear: req.AcademicYear,
		ClosesAt:     req.ClosesAt,
	}
	for _, q := range req.Questions {
		survey.Questions = append(survey.Questions, &models.SurveyQuestion{
			Text:     q.Text,
			Type:     models.SurveyQuestionType(q.Type),
			Position: q.Position,
		})
	}

	if err := database.CreateSurvey(config.GetDB(), survey); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create survey"})
	}
	return c.Status(201).JSON(fiber.Map{"survey": survey})
}

// SubmitResponsesAPI ingests one respondent's answers.
func SubmitResponsesAPI(c *fiber.Ctx) error {
	type ResponseEntry struct {
		QuestionID string `json:"question_id" validate:"required,uuid"`
		Rating     *int   `json:"rating" validate:"omitempty,min=1,max=5"`
		Answer     string `json:"answer"`
	}
	type SubmitRequest struct {
		Responses []ResponseEntry `json:"responses" validate:"required,min=1,dive"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	responses := make([]*models.SurveyResponse, len(req.Responses))
	for i, r := range req.Responses {
		responses[i] = &models.SurveyResponse{QuestionID: r.QuestionID, Rating: r.Rating, Answer: r.Answer}
	}

	if err := database.CreateSurveyResponses(config.GetDB(), responses); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save responses"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Responses recorded", "count": len(responses)})
}

func GetExitExamsAPI(c *fiber.Ctx) error {
	departmentID := c.Query("department_id")
	if departmentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "department_id is required"})
	}

	exams, err := database.GetExitExamsByDepartment(config.GetDB(), departmentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get exit exams"})
	}
	return c.JSON(fiber.Map{"exit_exams": exams})
}

func CreateExitExamAPI(c *fiber.Ctx) error {
	type CreateExitExamRequest struct {
		DepartmentID string `json:"department_id" validate:"required,uuid"`
		Name         string `json:"name" validate:"required"`
		AcademicYear string `json:"academic_year" validate:"required"`
	}

	var req CreateExitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exam := &models.ExitExam{DepartmentID: req.DepartmentID, Name: req.Name, AcademicYear: req.AcademicYear}
	if err := database.CreateExitExam(config.GetDB(), exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exit exam"})
	}
	return c.Status(201).JSON(fiber.Map{"exit_exam": exam})
}

func SubmitExitExamResultsAPI(c *fiber.Ctx) error {
	type ResultEntry struct {
		StudentID string  `json:"student_id" validate:"omitempty,uuid"`
		Score     float64 `json:"score" validate:"gte=0"`
		MaxScore  float64 `json:"max_score" validate:"gt=0"`
	}
	type SubmitRequest struct {
		Results []ResultEntry `json:"results" validate:"required,min=1,dive"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exitExamID := c.Params("id")
	results := make([]*models.ExitExamResult, len(req.Results))
	for i, r := range req.Results {
		var studentID *string
		if r.StudentID != "" {
			id := r.StudentID
			studentID = &id
		}
		results[i] = &models.ExitExamResult{
			ExitExamID: exitExamID,
			StudentID:  studentID,
			Score:      r.Score,
			MaxScore:   r.MaxScore,
		}
	}

	if err := database.CreateExitExamResults(config.GetDB(), results); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save results"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Results recorded", "count": len(results)})
}

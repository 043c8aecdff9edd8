package exams

import (
	"database/sql"
	"time"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/attainment"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func GetExamsAPI(c *fiber.Ctx) error {
	subjectID := c.Query("subject_id")
	if subjectID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subject_id is required"})
	}

	exams, err := database.GetExamsBySubject(config.GetDB(), subjectID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get exams"})
	}
	return c.JSON(fiber.Map{"exams": exams})
}

func GetExamAPI(c *fiber.Ctx) error {
	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	questions, err := database.GetQuestionsByExam(config.GetDB(), exam.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get questions"})
	}
	exam.Questions = questions

	return c.JSON(fiber.Map{"exam": exam})
}

func CreateExamAPI(c *fiber.Ctx) error {
	type CreateExamRequest struct {
		SubjectID  string    `json:"subject_id" validate:"required,uuid"`
		Name       string    `json:"name" validate:"required"`
		Type       string    `json:"type" validate:"required,oneof=internal external assignment quiz"`
		ExamDate   time.Time `json:"exam_date" validate:"required"`
		TotalMarks float64   `json:"total_marks" validate:"gte=0"`
	}

	var req CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exam := &models.Exam{
		SubjectID:  req.SubjectID,
		Name:       req.Name,
		Type:       models.ExamType(req.Type),
		ExamDate:   req.ExamDate,
		TotalMarks: req.TotalMarks,
	}
	if err := database.CreateExam(config.GetDB(), exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}
	return c.Status(201).JSON(fiber.Map{"exam": exam})
}

// UpdateExamStatusAPI moves an exam through draft -> locked -> published.
// Going backwards is not allowed; locked marks stay stable.
func UpdateExamStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status string `json:"status" validate:"required,oneof=locked published"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	next := models.ExamStatus(req.Status)
	valid := (exam.Status == models.ExamDraft && next == models.ExamLocked) ||
		(exam.Status == models.ExamLocked && next == models.ExamPublished)
	if !valid {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status transition from " + string(exam.Status)})
	}

	if err := database.UpdateExamStatus(config.GetDB(), exam.ID, next); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam status"})
	}
	return c.JSON(fiber.Map{"message": "Exam status updated successfully", "status": next})
}

func CreateQuestionAPI(c *fiber.Ctx) error {
	type CreateQuestionRequest struct {
		QuestionNumber string  `json:"question_number" validate:"required"`
		Text           string  `json:"text"`
		MaxMarks       float64 `json:"max_marks" validate:"gt=0"`
	}

	var req CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if exam.Status != models.ExamDraft {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot modify questions of a " + string(exam.Status) + " exam"})
	}

	question := &models.Question{
		ExamID:         exam.ID,
		QuestionNumber: req.QuestionNumber,
		Text:           req.Text,
		MaxMarks:       req.MaxMarks,
	}
	if err := database.CreateQuestion(config.GetDB(), question); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create question"})
	}
	return c.Status(201).JSON(fiber.Map{"question": question})
}

func GetQuestionCOWeightsAPI(c *fiber.Ctx) error {
	weights, err := database.GetQuestionCOWeights(config.GetDB(), c.Params("questionId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get question CO weights"})
	}
	return c.JSON(fiber.Map{"weights": weights})
}

// ReplaceQuestionCOWeightsAPI replaces a question's CO weight set. The set
// must sum to 100 before it is persisted.
func ReplaceQuestionCOWeightsAPI(c *fiber.Ctx) error {
	type WeightEntry struct {
		COID      string  `json:"co_id" validate:"required,uuid"`
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

	questionID := c.Params("questionId")
	if _, err := database.GetQuestionByID(config.GetDB(), questionID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Question not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	pcts := make([]decimal.Decimal, len(req.Weights))
	weights := make([]*models.QuestionCOWeight, len(req.Weights))
	for i, w := range req.Weights {
		pcts[i] = decimal.NewFromFloat(w.WeightPct)
		weights[i] = &models.QuestionCOWeight{QuestionID: questionID, COID: w.COID, WeightPct: w.WeightPct}
	}

	cfg := attainment.DefaultConfig()
	if err := attainment.ValidateWeights("question "+questionID, pcts, cfg.WeightTolerance); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.ReplaceQuestionCOWeights(config.GetDB(), questionID, weights); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save question CO weights"})
	}
	return c.JSON(fiber.Map{"message": "Question CO weights saved successfully"})
}

// BatchMarksAPI records a batch of marks for one exam. Writes are rejected
// once the exam leaves draft and each mark is bounds-checked against its
// question's maximum.
func BatchMarksAPI(c *fiber.Ctx) error {
	type MarkEntry struct {
		StudentID     string  `json:"student_id" validate:"required,uuid"`
		QuestionID    string  `json:"question_id" validate:"required,uuid"`
		MarksObtained float64 `json:"marks_obtained" validate:"gte=0"`
	}
	type BatchMarksRequest struct {
		Marks []MarkEntry `json:"marks" validate:"required,min=1,dive"`
	}

	var req BatchMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if exam.Status != models.ExamDraft {
		return c.Status(400).JSON(fiber.Map{"error": "Marks of a " + string(exam.Status) + " exam cannot be changed"})
	}

	questions, err := database.GetQuestionsByExam(config.GetDB(), exam.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get questions"})
	}
	maxByQuestion := make(map[string]float64, len(questions))
	for _, q := range questions {
		maxByQuestion[q.ID] = q.MaxMarks
	}

	marks := make([]*models.Mark, len(req.Marks))
	for i, m := range req.Marks {
		max, ok := maxByQuestion[m.QuestionID]
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Question " + m.QuestionID + " does not belong to this exam"})
		}
		if m.MarksObtained > max {
			return c.Status(400).JSON(fiber.Map{"error": "Marks for question " + m.QuestionID + " exceed the maximum"})
		}
		marks[i] = &models.Mark{
			ExamID:        exam.ID,
			StudentID:     m.StudentID,
			QuestionID:    m.QuestionID,
			MarksObtained: m.MarksObtained,
		}
	}

	if err := database.BatchUpsertMarks(config.GetDB(), marks); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save marks"})
	}
	return c.JSON(fiber.Map{"message": "Marks saved successfully", "count": len(marks)})
}

func GetMarksAPI(c *fiber.Ctx) error {
	marks, err := database.GetMarksByExam(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get marks"})
	}
	return c.JSON(fiber.Map{"marks": marks})
}

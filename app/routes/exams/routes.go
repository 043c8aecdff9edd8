package exams

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupExamRoutes(app *fiber.App) {
	api := app.Group("/api/exams", auth.AuthMiddleware)

	api.Get("/", GetExamsAPI)
	api.Get("/:id", GetExamAPI)
	api.Post("/", auth.RoleMiddleware("admin", "hod", "teacher"), CreateExamAPI)
	api.Patch("/:id/status", auth.RoleMiddleware("admin", "hod", "teacher"), UpdateExamStatusAPI)

	api.Post("/:id/questions", auth.RoleMiddleware("admin", "hod", "teacher"), CreateQuestionAPI)
	api.Get("/:id/questions/:questionId/co-weights", GetQuestionCOWeightsAPI)
	api.Put("/:id/questions/:questionId/co-weights", auth.RoleMiddleware("admin", "hod", "teacher"), ReplaceQuestionCOWeightsAPI)

	api.Get("/:id/marks", GetMarksAPI)
	api.Post("/:id/marks", auth.RoleMiddleware("admin", "hod", "teacher"), BatchMarksAPI)
}

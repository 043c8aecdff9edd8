package surveys

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSurveyRoutes(app *fiber.App) {
	api := app.Group("/api/surveys", auth.AuthMiddleware)

	api.Get("/", GetSurveysAPI)
	api.Post("/", auth.RoleMiddleware("admin", "hod", "coordinator"), CreateSurveyAPI)
	api.Post("/responses", SubmitResponsesAPI)

	exitExams := app.Group("/api/exit-exams", auth.AuthMiddleware)
	exitExams.Get("/", GetExitExamsAPI)
	exitExams.Post("/", auth.RoleMiddleware("admin", "hod", "coordinator"), CreateExitExamAPI)
	exitExams.Post("/:id/results", auth.RoleMiddleware("admin", "hod", "coordinator"), SubmitExitExamResultsAPI)
}

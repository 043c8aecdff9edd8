package subjects

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSubjectRoutes(app *fiber.App) {
	api := app.Group("/api/subjects", auth.AuthMiddleware)

	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectAPI)
	api.Post("/", auth.RoleMiddleware("admin", "hod"), CreateSubjectAPI)
	api.Put("/:id", auth.RoleMiddleware("admin", "hod"), UpdateSubjectAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin", "hod"), DeleteSubjectAPI)

	// Course outcomes live under their subject
	api.Get("/:id/course-outcomes", GetCourseOutcomesAPI)
	api.Post("/:id/course-outcomes", auth.RoleMiddleware("admin", "hod", "teacher"), CreateCourseOutcomeAPI)
	api.Put("/:id/course-outcomes/:coId", auth.RoleMiddleware("admin", "hod", "teacher"), UpdateCourseOutcomeAPI)
	api.Delete("/:id/course-outcomes/:coId", auth.RoleMiddleware("admin", "hod"), DeleteCourseOutcomeAPI)

	// Exam-type blending weights
	api.Get("/:id/assessment-weights", GetAssessmentWeightsAPI)
	api.Put("/:id/assessment-weights", auth.RoleMiddleware("admin", "hod"), ReplaceAssessmentWeightsAPI)
}

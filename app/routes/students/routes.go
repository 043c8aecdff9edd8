package students

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Post("/", auth.RoleMiddleware("admin", "hod", "teacher"), CreateStudentAPI)
}

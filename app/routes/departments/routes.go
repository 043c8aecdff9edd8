package departments

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentRoutes(app *fiber.App) {
	api := app.Group("/api/departments", auth.AuthMiddleware)

	api.Get("/", GetDepartmentsAPI)
	api.Get("/:id", GetDepartmentAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateDepartmentAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateDepartmentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteDepartmentAPI)

	// Program outcomes live under their department
	api.Get("/:id/program-outcomes", GetProgramOutcomesAPI)
	api.Post("/:id/program-outcomes", auth.RoleMiddleware("admin", "hod"), CreateProgramOutcomeAPI)
	api.Delete("/:id/program-outcomes/:poId", auth.RoleMiddleware("admin", "hod"), DeleteProgramOutcomeAPI)
}

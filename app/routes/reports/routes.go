package reports

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	api := app.Group("/api/reports", auth.AuthMiddleware)

	api.Get("/co-attainment/:subjectId", COAttainmentAPI)
	api.Get("/po-attainment/:departmentId", POAttainmentAPI)
	api.Get("/indirect-attainment/:departmentId", IndirectAttainmentAPI)

	web := app.Group("/reports", auth.AuthMiddleware)
	web.Get("/attainment", ShowAttainmentPage)
}

func ShowAttainmentPage(c *fiber.Ctx) error {
	return c.Render("reports/attainment", fiber.Map{
		"Title":       "Attainment Reports - OBE LMS",
		"CurrentPage": "reports",
		"user":        c.Locals("user"),
	})
}

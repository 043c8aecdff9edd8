package dashboard

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	web := app.Group("/dashboard", auth.AuthMiddleware)
	web.Get("/", ShowDashboardPage)

	api := app.Group("/api/dashboard", auth.AuthMiddleware)
	api.Get("/stats", StatsAPI)
}

func ShowDashboardPage(c *fiber.Ctx) error {
	stats, err := getStats()
	if err != nil {
		stats = &Stats{}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - OBE LMS",
		"CurrentPage": "dashboard",
		"user":        c.Locals("user"),
		"Stats":       stats,
	})
}

// Stats are the landing page counters.
type Stats struct {
	Departments int `json:"departments"`
	Subjects    int `json:"subjects"`
	Students    int `json:"students"`
	Exams       int `json:"exams"`
	Published   int `json:"published_exams"`
	Surveys     int `json:"active_surveys"`
}

func getStats() (*Stats, error) {
	db := config.GetDB()
	stats := &Stats{}

	err := db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM departments WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM subjects WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM students WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM exams WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM exams WHERE status = 'published' AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM surveys WHERE is_active = true AND deleted_at IS NULL)`,
	).Scan(&stats.Departments, &stats.Subjects, &stats.Students, &stats.Exams, &stats.Published, &stats.Surveys)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func StatsAPI(c *fiber.Ctx) error {
	stats, err := getStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get stats"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

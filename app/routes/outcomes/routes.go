package outcomes

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupOutcomeRoutes(app *fiber.App) {
	api := app.Group("/api/outcomes", auth.AuthMiddleware)

	api.Get("/:poId/mappings", GetCOPOMappingsAPI)
	api.Put("/:poId/mappings", auth.RoleMiddleware("admin", "hod", "coordinator"), UpsertCOPOMappingAPI)
	api.Delete("/:poId/mappings/:mappingId", auth.RoleMiddleware("admin", "hod", "coordinator"), DeleteCOPOMappingAPI)

	api.Post("/validate-weights", ValidateWeightsAPI)
}

package outcomes

import (
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/attainment"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/config"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func GetCOPOMappingsAPI(c *fiber.Ctx) error {
	mappings, err := database.GetCOPOMappingsByPO(config.GetDB(), c.Params("poId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get mappings"})
	}
	return c.JSON(fiber.Map{"mappings": mappings})
}

func UpsertCOPOMappingAPI(c *fiber.Ctx) error {
	type MappingRequest struct {
		COID     string `json:"co_id" validate:"required,uuid"`
		Strength int    `json:"strength" validate:"required,min=1,max=3"`
	}

	var req MappingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	mapping := &models.COPOMapping{COID: req.COID, POID: c.Params("poId"), Strength: req.Strength}
	if err := database.UpsertCOPOMapping(config.GetDB(), mapping); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save mapping"})
	}
	return c.JSON(fiber.Map{"mapping": mapping})
}

func DeleteCOPOMappingAPI(c *fiber.Ctx) error {
	if err := database.DeleteCOPOMapping(config.GetDB(), c.Params("mappingId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete mapping"})
	}
	return c.JSON(fiber.Map{"message": "Mapping deleted successfully"})
}

// ValidateWeightsAPI checks an arbitrary weight set without persisting it.
// Useful for client-side forms before submission.
func ValidateWeightsAPI(c *fiber.Ctx) error {
	type ValidateRequest struct {
		Key     string    `json:"key"`
		Weights []float64 `json:"weights" validate:"required,min=1"`
	}

	var req ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	pcts := make([]decimal.Decimal, len(req.Weights))
	for i, w := range req.Weights {
		pcts[i] = decimal.NewFromFloat(w)
	}

	cfg := attainment.DefaultConfig()
	if err := attainment.ValidateWeights(req.Key, pcts, cfg.WeightTolerance); err != nil {
		return c.Status(400).JSON(fiber.Map{"valid": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"valid": true})
}

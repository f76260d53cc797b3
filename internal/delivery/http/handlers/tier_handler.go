package handlers

import (
	"github.com/gofiber/fiber/v2"
	tierResponse "github.com/refpilot/affiliate-service/internal/delivery/http/dto/tier/response"
	"github.com/refpilot/affiliate-service/internal/engine"
	"github.com/refpilot/affiliate-service/internal/usecase"
	tierdto "github.com/refpilot/affiliate-service/internal/usecase/dto/tier"
)

type TierHandler struct {
	TierUsecase usecase.TierUsecase
}

func NewTierHandler(tierUsecase usecase.TierUsecase) *TierHandler {
	return &TierHandler{TierUsecase: tierUsecase}
}

func (h *TierHandler) GetTierTable(c *fiber.Ctx) error {
	tiers, err := h.TierUsecase.GetTierTable()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tierResponse.FromDomainTable(tiers))
}

func (h *TierHandler) ReplaceTierTable(c *fiber.Ctx) error {
	var input tierdto.ReplaceTierTableInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	tiers, err := h.TierUsecase.ReplaceTierTable(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tierResponse.FromDomainTable(tiers))
}

// ResolveTierKey coerces tier references from older integrations, which
// sent tier names or raw indices, onto the current table.
func (h *TierHandler) ResolveTierKey(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "key query parameter is required",
		})
	}

	tiers, err := h.TierUsecase.GetTierTable()
	if err != nil {
		return respondError(c, err)
	}

	index := engine.NormalizeTierKey(key, tiers)
	return c.JSON(fiber.Map{
		"key":        key,
		"tier_index": index,
		"tier_name":  tiers[index].Name,
	})
}

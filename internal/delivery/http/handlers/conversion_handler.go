package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	conversionResponse "github.com/refpilot/affiliate-service/internal/delivery/http/dto/conversion/response"
	"github.com/refpilot/affiliate-service/internal/engine"
	"github.com/refpilot/affiliate-service/internal/usecase"
	conversiondto "github.com/refpilot/affiliate-service/internal/usecase/dto/conversion"
)

type ConversionHandler struct {
	ConversionUsecase usecase.ConversionUsecase
}

func NewConversionHandler(conversionUsecase usecase.ConversionUsecase) *ConversionHandler {
	return &ConversionHandler{ConversionUsecase: conversionUsecase}
}

func (h *ConversionHandler) LogSale(c *fiber.Ctx) error {
	var body struct {
		AffiliateID string     `json:"affiliate_id"`
		Amount      float64    `json:"amount"`
		CreatedAt   *time.Time `json:"created_at"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	input := conversiondto.LogSaleInput{
		AffiliateID: body.AffiliateID,
		Amount:      body.Amount,
	}
	if body.CreatedAt != nil {
		input.CreatedAt = *body.CreatedAt
	}

	conversion, err := h.ConversionUsecase.LogSale(&input, "api")
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(conversionResponse.FromDomain(conversion))
}

func (h *ConversionHandler) ApproveConversion(c *fiber.Ctx) error {
	if err := h.ConversionUsecase.ApproveConversion(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ConversionHandler) RefundConversion(c *fiber.Ctx) error {
	if err := h.ConversionUsecase.RefundConversion(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ConversionHandler) GetAffiliateConversions(c *fiber.Ctx) error {
	conversions, err := h.ConversionUsecase.GetConversionsByAffiliateID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(conversionResponse.FromDomainList(conversions))
}

func (h *ConversionHandler) GetMonthlyRevenue(c *fiber.Ctx) error {
	month := engine.CurrentMonth()
	if raw := c.Query("month"); raw != "" {
		parsed, err := engine.ParseYearMonth(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "month must look like 2026-08",
			})
		}
		month = parsed
	}

	revenue, err := h.ConversionUsecase.GetMonthlyRevenue(c.Params("id"), month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"affiliate_id": c.Params("id"),
		"year":         month.Year,
		"month":        int(month.Month),
		"revenue":      revenue,
	})
}

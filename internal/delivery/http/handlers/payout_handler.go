package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	payoutResponse "github.com/refpilot/affiliate-service/internal/delivery/http/dto/payout/response"
	"github.com/refpilot/affiliate-service/internal/usecase"
	payoutdto "github.com/refpilot/affiliate-service/internal/usecase/dto/payout"
)

type PayoutHandler struct {
	PayoutUsecase usecase.PayoutUsecase
}

func NewPayoutHandler(payoutUsecase usecase.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{PayoutUsecase: payoutUsecase}
}

func (h *PayoutHandler) GetLedger(c *fiber.Ctx) error {
	ledger, err := h.PayoutUsecase.GetLedger(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ledger)
}

func (h *PayoutHandler) PayNow(c *fiber.Ctx) error {
	var body struct {
		ConversionIDs []string `json:"conversion_ids"`
		Amount        float64  `json:"amount"`
		Method        string   `json:"method"`
		Reference     string   `json:"reference"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	payout, err := h.PayoutUsecase.PayNow(&payoutdto.PayNowInput{
		AffiliateID:   c.Params("id"),
		ConversionIDs: body.ConversionIDs,
		Amount:        body.Amount,
		Method:        body.Method,
		Reference:     body.Reference,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payoutResponse.FromDomain(payout))
}

func (h *PayoutHandler) RecordPayout(c *fiber.Ctx) error {
	var body struct {
		AffiliateID string     `json:"affiliate_id"`
		Amount      float64    `json:"amount"`
		Method      string     `json:"method"`
		Reference   string     `json:"reference"`
		PaidAt      *time.Time `json:"paid_at"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	input := payoutdto.RecordPayoutInput{
		AffiliateID: body.AffiliateID,
		Amount:      body.Amount,
		Method:      body.Method,
		Reference:   body.Reference,
	}
	if body.PaidAt != nil {
		input.PaidAt = *body.PaidAt
	}

	payout, err := h.PayoutUsecase.RecordPayout(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payoutResponse.FromDomain(payout))
}

func (h *PayoutHandler) MassPayoutPreview(c *fiber.Ctx) error {
	rows, err := h.PayoutUsecase.MassPayoutPreview()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *PayoutHandler) GetAffiliatePayouts(c *fiber.Ctx) error {
	payouts, err := h.PayoutUsecase.GetPayoutsByAffiliateID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payoutResponse.FromDomainList(payouts))
}

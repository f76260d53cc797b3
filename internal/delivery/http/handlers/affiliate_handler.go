package handlers

import (
	"github.com/gofiber/fiber/v2"
	affiliateResponse "github.com/refpilot/affiliate-service/internal/delivery/http/dto/affiliate/response"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	"github.com/refpilot/affiliate-service/internal/usecase"
	affiliatedto "github.com/refpilot/affiliate-service/internal/usecase/dto/affiliate"
)

type AffiliateHandler struct {
	AffiliateUsecase usecase.AffiliateUsecase
}

func NewAffiliateHandler(affiliateUsecase usecase.AffiliateUsecase) *AffiliateHandler {
	return &AffiliateHandler{AffiliateUsecase: affiliateUsecase}
}

func (h *AffiliateHandler) CreateAffiliate(c *fiber.Ctx) error {
	var body struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Slug         string `json:"slug"`
		ReferralSlug string `json:"referral_slug"`
		Active       bool   `json:"active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if body.Name == "" || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and email are required",
		})
	}

	affiliate, err := h.AffiliateUsecase.CreateAffiliate(&affiliatedto.CreateAffiliateInput{
		Name:         body.Name,
		Email:        body.Email,
		Slug:         body.Slug,
		ReferralSlug: body.ReferralSlug,
		Active:       body.Active,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(affiliateResponse.FromDomain(affiliate))
}

func (h *AffiliateHandler) GetAffiliates(c *fiber.Ctx) error {
	var statuses []domain.AffiliateStatus
	if raw := c.Query("status"); raw != "" {
		statuses = append(statuses, domain.AffiliateStatus(raw))
	}

	affiliates, err := h.AffiliateUsecase.GetAffiliates(statuses)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(affiliateResponse.FromDomainList(affiliates))
}

func (h *AffiliateHandler) GetAffiliate(c *fiber.Ctx) error {
	affiliate, err := h.AffiliateUsecase.GetAffiliateByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(affiliateResponse.FromDomain(affiliate))
}

func (h *AffiliateHandler) ApproveAffiliate(c *fiber.Ctx) error {
	var body struct {
		ReferralSlug string `json:"referral_slug"`
	}
	// empty body is fine, approval without a recruiter
	_ = c.BodyParser(&body)

	if err := h.AffiliateUsecase.ApproveAffiliate(c.Params("id"), body.ReferralSlug); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": string(domain.AffiliateStatusActive)})
}

func (h *AffiliateHandler) RejectAffiliate(c *fiber.Ctx) error {
	if err := h.AffiliateUsecase.RejectAffiliate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": string(domain.AffiliateStatusRejected)})
}

func (h *AffiliateHandler) ArchiveAffiliate(c *fiber.Ctx) error {
	if err := h.AffiliateUsecase.ArchiveAffiliate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": string(domain.AffiliateStatusArchived)})
}

func (h *AffiliateHandler) SetParent(c *fiber.Ctx) error {
	var body struct {
		ParentID string `json:"parent_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	err := h.AffiliateUsecase.SetParent(&affiliatedto.SetParentInput{
		AffiliateID: c.Params("id"),
		ParentID:    body.ParentID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AffiliateHandler) GetAffiliateSummary(c *fiber.Ctx) error {
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

	summary, err := h.AffiliateUsecase.GetAffiliateSummary(c.Params("id"), month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

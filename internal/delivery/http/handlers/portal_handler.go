package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/refpilot/affiliate-service/internal/usecase"
)

type PortalHandler struct {
	PortalUsecase usecase.PortalUsecase
}

func NewPortalHandler(portalUsecase usecase.PortalUsecase) *PortalHandler {
	return &PortalHandler{PortalUsecase: portalUsecase}
}

func (h *PortalHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.PortalUsecase.GetDashboard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/refpilot/affiliate-service/internal/usecase"
)

type IntegrityHandler struct {
	IntegrityUsecase usecase.IntegrityUsecase
}

func NewIntegrityHandler(integrityUsecase usecase.IntegrityUsecase) *IntegrityHandler {
	return &IntegrityHandler{IntegrityUsecase: integrityUsecase}
}

// GetReport runs a sweep on demand so admins can check graph health
// without waiting for the background interval.
func (h *IntegrityHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.IntegrityUsecase.Sweep()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/refpilot/affiliate-service/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Anything not
// recognized is a 500 so bugs never masquerade as client mistakes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrAffiliateNotFound),
		errors.Is(err, domain.ErrConversionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, domain.ErrCycleDetected),
		errors.Is(err, domain.ErrInvalidStatusChange),
		errors.Is(err, domain.ErrConversionAlreadyPaid):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrParentNotFound),
		errors.Is(err, domain.ErrInvalidTierTable),
		errors.Is(err, domain.ErrTierTableSize),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrNothingToPay),
		errors.Is(err, domain.ErrConversionNotApproved):
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

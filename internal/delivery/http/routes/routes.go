package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/refpilot/affiliate-service/internal/delivery/http/handlers"
)

// Handlers bundles every HTTP handler the API mounts.
type Handlers struct {
	Affiliate  *handlers.AffiliateHandler
	Tier       *handlers.TierHandler
	Conversion *handlers.ConversionHandler
	Payout     *handlers.PayoutHandler
	Portal     *handlers.PortalHandler
	Integrity  *handlers.IntegrityHandler
}

func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/v1")

	affiliates := api.Group("/affiliates")
	affiliates.Post("/", h.Affiliate.CreateAffiliate)
	affiliates.Get("/", h.Affiliate.GetAffiliates)
	affiliates.Get("/:id", h.Affiliate.GetAffiliate)
	affiliates.Post("/:id/approve", h.Affiliate.ApproveAffiliate)
	affiliates.Post("/:id/reject", h.Affiliate.RejectAffiliate)
	affiliates.Post("/:id/archive", h.Affiliate.ArchiveAffiliate)
	affiliates.Put("/:id/parent", h.Affiliate.SetParent)
	affiliates.Get("/:id/summary", h.Affiliate.GetAffiliateSummary)
	affiliates.Get("/:id/conversions", h.Conversion.GetAffiliateConversions)
	affiliates.Get("/:id/revenue", h.Conversion.GetMonthlyRevenue)
	affiliates.Get("/:id/ledger", h.Payout.GetLedger)
	affiliates.Post("/:id/pay-now", h.Payout.PayNow)
	affiliates.Get("/:id/payouts", h.Payout.GetAffiliatePayouts)

	tiers := api.Group("/tiers")
	tiers.Get("/", h.Tier.GetTierTable)
	tiers.Put("/", h.Tier.ReplaceTierTable)
	tiers.Get("/resolve-key", h.Tier.ResolveTierKey)

	conversions := api.Group("/conversions")
	conversions.Post("/", h.Conversion.LogSale)
	conversions.Post("/:id/approve", h.Conversion.ApproveConversion)
	conversions.Post("/:id/refund", h.Conversion.RefundConversion)

	payouts := api.Group("/payouts")
	payouts.Post("/", h.Payout.RecordPayout)
	payouts.Get("/mass-preview", h.Payout.MassPayoutPreview)

	api.Get("/portal/:id/dashboard", h.Portal.GetDashboard)
	api.Get("/integrity/report", h.Integrity.GetReport)
}

package payoutdto

import "time"

// PayNowInput settles specific approved conversions. The transaction is
// keyed on ConversionIDs, not on a recomputed balance, so a concurrent
// duplicate submission finds those rows already paid and fails cleanly.
type PayNowInput struct {
	AffiliateID   string
	ConversionIDs []string
	Amount        float64 // 0 means "pay the recomputed direct commission"
	Method        string
	Reference     string
}

// RecordPayoutInput books a manually executed payment (override
// settlements, off-platform transfers) without touching conversions.
type RecordPayoutInput struct {
	AffiliateID string
	Amount      float64
	Method      string
	Reference   string
	PaidAt      time.Time
}

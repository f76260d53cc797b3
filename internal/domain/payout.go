package domain

import "time"

// Payout records money actually sent to an affiliate. It is the source
// of truth for "paid to date": paid conversions only mark inclusion in
// some payout, the amount sent is whatever the payout row says.
type Payout struct {
	ID          string
	AffiliateID string
	Amount      float64
	Method      string
	Reference   string
	PaidAt      time.Time
	CreatedAt   time.Time
}

type PayoutRepository interface {
	CreatePayout(payout *Payout) error
	GetPayoutsByAffiliateID(affiliateID string) ([]*Payout, error)
	GetAllPayouts() ([]*Payout, error)
	// SettleConversions atomically marks the given conversions paid and
	// inserts the payout row. Conversions that are not APPROVED at commit
	// time make the whole transaction fail, which is what serializes two
	// concurrent pay-now submissions against the same balance.
	SettleConversions(payout *Payout, conversionIDs []string) error
}

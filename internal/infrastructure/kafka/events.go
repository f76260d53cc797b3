package publisher

// Topics consumed by the notification bot and the storefront sync.
const (
	TopicAffiliateEvents  = "affiliate-events"
	TopicConversionEvents = "conversion-events"
	TopicPayoutEvents     = "payout-events"
	TopicTierEvents       = "tier-events"
	TopicSaleSync         = "sale-events"
)

type AffiliateEvent struct {
	Event       string `json:"event"` // created, approved, rejected, archived, parent_changed
	AffiliateID string `json:"affiliate_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Status      string `json:"status"`
	ParentID    string `json:"parent_id,omitempty"`
}

type ConversionEvent struct {
	Event        string  `json:"event"` // logged, approved, refunded
	ConversionID string  `json:"conversion_id"`
	AffiliateID  string  `json:"affiliate_id"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}

type PayoutEvent struct {
	Event       string  `json:"event"` // settled, recorded
	PayoutID    string  `json:"payout_id"`
	AffiliateID string  `json:"affiliate_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Reference   string  `json:"reference,omitempty"`
}

type TierTableEvent struct {
	Event    string `json:"event"` // replaced
	TierRows int    `json:"tier_rows"`
}

// SaleSyncMessage is what the storefront webhook bridge puts on the
// sale-events topic. CreatedAt is RFC3339; empty means "now".
type SaleSyncMessage struct {
	AffiliateID string  `json:"affiliate_id"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

package affiliatedto

// AffiliateSummary is the derived standing of one affiliate. Nothing in
// it is stored: tier, revenue and progress are recomputed from current
// conversions and the current tier table on every read.
type AffiliateSummary struct {
	AffiliateID    string   `json:"affiliate_id"`
	Name           string   `json:"name"`
	Status         string   `json:"status"`
	TierIndex      int      `json:"tier_index"`
	TierName       string   `json:"tier_name"`
	CommissionRate float64  `json:"commission_rate"`
	MonthlyRevenue float64  `json:"monthly_revenue"`
	TotalRevenue   float64  `json:"total_revenue"`
	NextThreshold  *float64 `json:"next_threshold"`
	Progress       float64  `json:"progress"`
	RemainingGap   float64  `json:"remaining_gap"`
}

package payoutdto

type LedgerOutput struct {
	AffiliateID          string   `json:"affiliate_id"`
	PendingApprovalOwed  float64  `json:"pending_approval_owed"`
	ApprovedUnpaidOwed   float64  `json:"approved_unpaid_owed"`
	UnpaidOwed           float64  `json:"unpaid_owed"`
	PaidToDate           float64  `json:"paid_to_date"`
	PayableConversionIDs []string `json:"payable_conversion_ids"`
}

// MassPayoutRow is one affiliate's pre-filled payable amount on the mass
// payout screen.
type MassPayoutRow struct {
	AffiliateID        string   `json:"affiliate_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	ApprovedUnpaidOwed float64  `json:"approved_unpaid_owed"`
	ConversionIDs      []string `json:"conversion_ids"`
}

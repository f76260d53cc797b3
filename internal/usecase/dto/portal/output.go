package portaldto

import affiliatedto "github.com/refpilot/affiliate-service/internal/usecase/dto/affiliate"

// DownlineRow summarizes one override-eligible descendant for the
// portal: the recruit's volume this month and the rate the viewing
// affiliate's own tier earns on it.
type DownlineRow struct {
	AffiliateID    string  `json:"affiliate_id"`
	Name           string  `json:"name"`
	Level          int     `json:"level"` // 1 = direct recruit
	MonthlyRevenue float64 `json:"monthly_revenue"`
	OverrideRate   float64 `json:"override_rate"`
}

type DashboardOutput struct {
	Summary             affiliatedto.AffiliateSummary `json:"summary"`
	PendingApprovalOwed float64                       `json:"pending_approval_owed"`
	ApprovedUnpaidOwed  float64                       `json:"approved_unpaid_owed"`
	PaidToDate          float64                       `json:"paid_to_date"`
	Downline            []DownlineRow                 `json:"downline"`
}

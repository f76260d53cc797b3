package engine

import "github.com/refpilot/affiliate-service/internal/domain"

// Ledger is the reconciled owed-vs-paid view for one affiliate. Owed
// buckets come from recomputing commissions over current data; PaidToDate
// comes from payout records only: paid conversions mark inclusion in a
// payout, not the amount that was sent.
type Ledger struct {
	AffiliateID          string
	PendingApprovalOwed  float64
	ApprovedUnpaidOwed   float64
	UnpaidOwed           float64
	PaidToDate           float64
	PayableConversionIDs []string
	DanglingConversions  []string
}

// LedgerFor reduces every conversion in the index to the share owed to
// affiliateID (direct commission on its own conversions plus overrides
// on descendants') and buckets the shares by conversion status.
// Conversions with unknown owners are excluded best-effort and reported
// so the dashboard still renders while operators see the bad rows.
func LedgerFor(
	affiliateID string,
	idx *ConversionIndex,
	payouts []*domain.Payout,
	graph *Graph,
	tiers domain.TierTable,
) Ledger {
	ledger := Ledger{AffiliateID: affiliateID}

	for _, conversion := range idx.All() {
		breakdown, err := CommissionsFor(conversion, graph, idx, tiers)
		if err != nil {
			ledger.DanglingConversions = append(ledger.DanglingConversions, conversion.ID)
			continue
		}

		var share float64
		if breakdown.OwnerID == affiliateID {
			share = breakdown.Direct
		} else {
			for _, override := range breakdown.Overrides {
				if override.AffiliateID == affiliateID {
					share += override.Amount
				}
			}
		}
		if share == 0 {
			continue
		}

		switch conversion.Status {
		case domain.ConversionStatusPending:
			ledger.PendingApprovalOwed = round2(ledger.PendingApprovalOwed + share)
		case domain.ConversionStatusApproved:
			ledger.ApprovedUnpaidOwed = round2(ledger.ApprovedUnpaidOwed + share)
			if breakdown.OwnerID == affiliateID {
				ledger.PayableConversionIDs = append(ledger.PayableConversionIDs, conversion.ID)
			}
		case domain.ConversionStatusPaid:
			// settled through a payout record already
		}
	}

	ledger.UnpaidOwed = round2(ledger.PendingApprovalOwed + ledger.ApprovedUnpaidOwed)

	for _, payout := range payouts {
		if payout.AffiliateID == affiliateID {
			ledger.PaidToDate = round2(ledger.PaidToDate + payout.Amount)
		}
	}

	return ledger
}

package response

import (
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

type PayoutResponse struct {
	ID          string    `json:"id"`
	AffiliateID string    `json:"affiliate_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	PaidAt      time.Time `json:"paid_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDomain(payout *domain.Payout) PayoutResponse {
	return PayoutResponse{
		ID:          payout.ID,
		AffiliateID: payout.AffiliateID,
		Amount:      payout.Amount,
		Method:      payout.Method,
		Reference:   payout.Reference,
		PaidAt:      payout.PaidAt,
		CreatedAt:   payout.CreatedAt,
	}
}

func FromDomainList(payouts []*domain.Payout) []PayoutResponse {
	responses := make([]PayoutResponse, len(payouts))
	for i, payout := range payouts {
		responses[i] = FromDomain(payout)
	}
	return responses
}

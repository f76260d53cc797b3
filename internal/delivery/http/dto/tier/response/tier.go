package response

import "github.com/refpilot/affiliate-service/internal/domain"

type TierRowResponse struct {
	Position   int     `json:"position"`
	Name       string  `json:"name"`
	Threshold  float64 `json:"threshold"`
	DirectRate float64 `json:"direct_rate"`
	Level2Rate float64 `json:"level2_rate"`
	Level3Rate float64 `json:"level3_rate"`
}

type TierTableResponse struct {
	Tiers []TierRowResponse `json:"tiers"`
}

func FromDomainTable(tiers domain.TierTable) TierTableResponse {
	rows := make([]TierRowResponse, len(tiers))
	for i, tier := range tiers {
		rows[i] = TierRowResponse{
			Position:   i,
			Name:       tier.Name,
			Threshold:  tier.Threshold,
			DirectRate: tier.DirectRate,
			Level2Rate: tier.Level2Rate,
			Level3Rate: tier.Level3Rate,
		}
	}
	return TierTableResponse{Tiers: rows}
}

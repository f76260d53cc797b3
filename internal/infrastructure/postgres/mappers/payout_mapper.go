package mappers

import (
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:          model.ID,
		AffiliateID: model.AffiliateID,
		Amount:      model.Amount,
		Method:      model.Method,
		Reference:   model.Reference,
		PaidAt:      model.PaidAt,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMPayout(payout *domain.Payout) *models.PayoutModel {
	return &models.PayoutModel{
		ID:          payout.ID,
		AffiliateID: payout.AffiliateID,
		Amount:      payout.Amount,
		Method:      payout.Method,
		Reference:   payout.Reference,
		PaidAt:      payout.PaidAt,
		CreatedAt:   payout.CreatedAt,
	}
}

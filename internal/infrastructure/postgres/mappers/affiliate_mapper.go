package mappers

import (
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainAffiliate(model *models.AffiliateModel) *domain.Affiliate {
	return &domain.Affiliate{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Slug:      model.Slug,
		ParentID:  model.ParentID,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMAffiliate(affiliate *domain.Affiliate) *models.AffiliateModel {
	return &models.AffiliateModel{
		ID:        affiliate.ID,
		Name:      affiliate.Name,
		Email:     affiliate.Email,
		Slug:      affiliate.Slug,
		ParentID:  affiliate.ParentID,
		Status:    affiliate.Status,
		CreatedAt: affiliate.CreatedAt,
		UpdatedAt: affiliate.UpdatedAt,
	}
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAffiliateRepository struct {
	DB *gorm.DB
}

func NewDefaultAffiliateRepository(db *gorm.DB) *DefaultAffiliateRepository {
	return &DefaultAffiliateRepository{DB: db}
}

func (r *DefaultAffiliateRepository) CreateAffiliate(affiliate *domain.Affiliate) error {
	if affiliate.ID == "" {
		affiliate.ID = uuid.New().String()
	}
	model := mappers.ToGORMAffiliate(affiliate)
	return r.DB.Create(model).Error
}

func (r *DefaultAffiliateRepository) GetAffiliateByID(affiliateID string) (*domain.Affiliate, error) {
	var model models.AffiliateModel
	if err := r.DB.First(&model, "id = ?", affiliateID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainAffiliate(&model), nil
}

func (r *DefaultAffiliateRepository) GetAffiliateByEmail(email string) (*domain.Affiliate, error) {
	var model models.AffiliateModel
	if err := r.DB.First(&model, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainAffiliate(&model), nil
}

func (r *DefaultAffiliateRepository) GetAffiliateBySlug(slug string) (*domain.Affiliate, error) {
	var model models.AffiliateModel
	if err := r.DB.First(&model, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainAffiliate(&model), nil
}

func (r *DefaultAffiliateRepository) GetAffiliates(statuses []domain.AffiliateStatus) ([]*domain.Affiliate, error) {
	query := r.DB.Model(&models.AffiliateModel{}).Order("created_at ASC")
	if len(statuses) > 0 {
		query = query.Where("status IN (?)", statuses)
	}

	var affiliateModels []models.AffiliateModel
	if err := query.Find(&affiliateModels).Error; err != nil {
		return nil, err
	}

	affiliates := make([]*domain.Affiliate, len(affiliateModels))
	for i, model := range affiliateModels {
		affiliates[i] = mappers.ToDomainAffiliate(&model)
	}
	return affiliates, nil
}

func (r *DefaultAffiliateRepository) UpdateAffiliateStatus(affiliateID string, newStatus domain.AffiliateStatus) error {
	return r.DB.Model(&models.AffiliateModel{ID: affiliateID}).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultAffiliateRepository) UpdateAffiliateParent(affiliateID, parentID string) error {
	return r.DB.Model(&models.AffiliateModel{ID: affiliateID}).
		Updates(map[string]interface{}{
			"parent_id":  parentID,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultAffiliateRepository) DeleteAffiliate(affiliateID string) error {
	return r.DB.Delete(&models.AffiliateModel{}, "id = ?", affiliateID).Error
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

func (r *DefaultPayoutRepository) CreatePayout(payout *domain.Payout) error {
	if payout.ID == "" {
		payout.ID = uuid.New().String()
	}
	model := mappers.ToGORMPayout(payout)
	return r.DB.Create(model).Error
}

func (r *DefaultPayoutRepository) GetPayoutsByAffiliateID(affiliateID string) ([]*domain.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := r.DB.
		Where("affiliate_id = ?", affiliateID).
		Order("paid_at ASC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, model := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&model)
	}
	return payouts, nil
}

func (r *DefaultPayoutRepository) GetAllPayouts() ([]*domain.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := r.DB.Order("paid_at ASC").Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, model := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&model)
	}
	return payouts, nil
}

// SettleConversions is the pay-now transaction: lock the exact rows,
// verify each one is still APPROVED and owned by the payee, flip them to
// PAID and insert the payout, all or nothing. A concurrent submission
// against the same ids blocks on the lock and then fails on the status
// check, which is what prevents double payment.
func (r *DefaultPayoutRepository) SettleConversions(payout *domain.Payout, conversionIDs []string) error {
	if payout.ID == "" {
		payout.ID = uuid.New().String()
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var conversionModels []models.ConversionModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN (?)", conversionIDs).
			Find(&conversionModels).Error; err != nil {
			return err
		}
		if len(conversionModels) != len(conversionIDs) {
			return domain.ErrConversionNotFound
		}

		for _, model := range conversionModels {
			if model.AffiliateID != payout.AffiliateID {
				return domain.ErrConversionNotFound
			}
			if model.Status == domain.ConversionStatusPaid {
				return domain.ErrConversionAlreadyPaid
			}
			if model.Status != domain.ConversionStatusApproved {
				return domain.ErrConversionNotApproved
			}
		}

		now := time.Now()
		if err := tx.Model(&models.ConversionModel{}).
			Where("id IN (?)", conversionIDs).
			Updates(map[string]interface{}{
				"status":     domain.ConversionStatusPaid,
				"paid_at":    now,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		return tx.Create(mappers.ToGORMPayout(payout)).Error
	})
}

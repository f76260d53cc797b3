package repository

import (
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTierRepository struct {
	DB *gorm.DB
}

func NewDefaultTierRepository(db *gorm.DB) *DefaultTierRepository {
	return &DefaultTierRepository{DB: db}
}

func (r *DefaultTierRepository) GetTierTable() (domain.TierTable, error) {
	var rows []models.TierModel
	if err := r.DB.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainTierTable(rows), nil
}

func (r *DefaultTierRepository) ReplaceTierTable(tiers domain.TierTable) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TierModel{}).Error; err != nil {
			return err
		}
		rows := mappers.ToGORMTierRows(tiers)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

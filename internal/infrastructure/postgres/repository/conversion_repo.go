package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/mappers"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultConversionRepository struct {
	DB *gorm.DB
}

func NewDefaultConversionRepository(db *gorm.DB) *DefaultConversionRepository {
	return &DefaultConversionRepository{DB: db}
}

func (r *DefaultConversionRepository) CreateConversion(conversion *domain.Conversion) error {
	if conversion.ID == "" {
		conversion.ID = uuid.New().String()
	}
	model := mappers.ToGORMConversion(conversion)
	return r.DB.Create(model).Error
}

func (r *DefaultConversionRepository) GetConversionByID(conversionID string) (*domain.Conversion, error) {
	var model models.ConversionModel
	if err := r.DB.First(&model, "id = ?", conversionID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainConversion(&model), nil
}

func (r *DefaultConversionRepository) GetConversionsByAffiliateID(affiliateID string) ([]*domain.Conversion, error) {
	var conversionModels []models.ConversionModel
	if err := r.DB.
		Where("affiliate_id = ?", affiliateID).
		Order("created_at ASC").
		Find(&conversionModels).Error; err != nil {
		return nil, err
	}

	conversions := make([]*domain.Conversion, len(conversionModels))
	for i, model := range conversionModels {
		conversions[i] = mappers.ToDomainConversion(&model)
	}
	return conversions, nil
}

func (r *DefaultConversionRepository) GetAllConversions() ([]*domain.Conversion, error) {
	var conversionModels []models.ConversionModel
	if err := r.DB.Order("created_at ASC").Find(&conversionModels).Error; err != nil {
		return nil, err
	}

	conversions := make([]*domain.Conversion, len(conversionModels))
	for i, model := range conversionModels {
		conversions[i] = mappers.ToDomainConversion(&model)
	}
	return conversions, nil
}

func (r *DefaultConversionRepository) UpdateConversionStatus(conversionID string, newStatus domain.ConversionStatus) error {
	return r.DB.Model(&models.ConversionModel{ID: conversionID}).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultConversionRepository) DeleteConversion(conversionID string) error {
	return r.DB.Delete(&models.ConversionModel{}, "id = ?", conversionID).Error
}

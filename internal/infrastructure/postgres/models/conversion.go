package models

import (
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

type ConversionModel struct {
	ID          string                  `gorm:"primaryKey;type:uuid"`
	AffiliateID string                  `gorm:"index;type:uuid;not null"`
	Amount      float64                 `gorm:"not null"`
	Status      domain.ConversionStatus `gorm:"index;not null"`
	CreatedAt   time.Time               `gorm:"index:idx_conversions_created_at"`
	PaidAt      *time.Time
	UpdatedAt   time.Time
}

func (ConversionModel) TableName() string {
	return "conversions"
}

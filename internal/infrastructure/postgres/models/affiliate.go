package models

import (
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

type AffiliateModel struct {
	ID        string                 `gorm:"primaryKey;type:uuid"`
	Name      string                 `gorm:"not null"`
	Email     string                 `gorm:"uniqueIndex;not null"`
	Slug      string                 `gorm:"uniqueIndex"`
	ParentID  string                 `gorm:"index;type:uuid"`
	Status    domain.AffiliateStatus `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AffiliateModel) TableName() string {
	return "affiliates"
}

package models

import "time"

type PayoutModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	AffiliateID string  `gorm:"index;type:uuid;not null"`
	Amount      float64 `gorm:"not null"`
	Method      string
	Reference   string
	PaidAt      time.Time
	CreatedAt   time.Time
}

func (PayoutModel) TableName() string {
	return "payouts"
}

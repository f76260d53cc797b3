package models

import "time"

// TierModel rows are only ever written as a full-table replace inside
// one transaction, so readers never observe a partially updated table.
type TierModel struct {
	ID         uint    `gorm:"primaryKey"`
	Position   int     `gorm:"not null"`
	Name       string  `gorm:"not null"`
	Threshold  float64 `gorm:"not null"`
	DirectRate float64 `gorm:"not null"`
	Level2Rate float64
	Level3Rate float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TierModel) TableName() string {
	return "tiers"
}

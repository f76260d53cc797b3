package postgres

import (
	"log"

	"github.com/refpilot/affiliate-service/internal/config"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AffiliateConfig) *gorm.DB {
	dsn := cfg.AffiliateDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.AffiliateModel{}, &models.TierModel{}, &models.ConversionModel{}, &models.PayoutModel{})

	return db
}

package mappers

import (
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainTierTable(rows []models.TierModel) domain.TierTable {
	tiers := make(domain.TierTable, len(rows))
	for i, row := range rows {
		tiers[i] = domain.TierDefinition{
			Name:       row.Name,
			Threshold:  row.Threshold,
			DirectRate: row.DirectRate,
			Level2Rate: row.Level2Rate,
			Level3Rate: row.Level3Rate,
		}
	}
	return tiers
}

func ToGORMTierRows(tiers domain.TierTable) []models.TierModel {
	rows := make([]models.TierModel, len(tiers))
	for i, tier := range tiers {
		rows[i] = models.TierModel{
			Position:   i,
			Name:       tier.Name,
			Threshold:  tier.Threshold,
			DirectRate: tier.DirectRate,
			Level2Rate: tier.Level2Rate,
			Level3Rate: tier.Level3Rate,
		}
	}
	return rows
}

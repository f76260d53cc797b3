package usecase

import (
	"log/slog"

	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	publisher "github.com/refpilot/affiliate-service/internal/infrastructure/kafka"
	"github.com/refpilot/affiliate-service/internal/infrastructure/metrics"
	tierdto "github.com/refpilot/affiliate-service/internal/usecase/dto/tier"
)

type TierUsecase interface {
	GetTierTable() (domain.TierTable, error)
	ReplaceTierTable(input *tierdto.ReplaceTierTableInput) (domain.TierTable, error)
}

type DefaultTierUsecase struct {
	TierRepo  domain.TierRepository
	Publisher domain.PublisherPort
	Metrics   *metrics.AffiliateMetrics
}

func NewDefaultTierUsecase(tierRepo domain.TierRepository, pub domain.PublisherPort, m *metrics.AffiliateMetrics) *DefaultTierUsecase {
	return &DefaultTierUsecase{
		TierRepo:  tierRepo,
		Publisher: pub,
		Metrics:   m,
	}
}

// GetTierTable returns the saved table, or the default table when the
// program has never saved one. Callers always get a usable table.
func (uc *DefaultTierUsecase) GetTierTable() (domain.TierTable, error) {
	tiers, err := uc.TierRepo.GetTierTable()
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return domain.DefaultTierTable(), nil
	}
	return engine.SortTierTable(tiers), nil
}

// ReplaceTierTable validates and swaps the whole table atomically. Bad
// tables are rejected here, at the write boundary, so the calculator can
// assume a valid table everywhere else.
func (uc *DefaultTierUsecase) ReplaceTierTable(input *tierdto.ReplaceTierTableInput) (domain.TierTable, error) {
	tiers := make(domain.TierTable, len(input.Tiers))
	for i, row := range input.Tiers {
		tiers[i] = domain.TierDefinition{
			Name:       row.Name,
			Threshold:  row.Threshold,
			DirectRate: row.DirectRate,
			Level2Rate: row.Level2Rate,
			Level3Rate: row.Level3Rate,
		}
	}
	tiers = engine.SortTierTable(tiers)

	if err := engine.ValidateTierTable(tiers); err != nil {
		return nil, err
	}

	if err := uc.TierRepo.ReplaceTierTable(tiers); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.TierTableReplacedTotal.Inc()
	}

	go func(rows int) {
		event := publisher.TierTableEvent{Event: "replaced", TierRows: rows}
		if err := publishJSON(uc.Publisher, publisher.TopicTierEvents, "tier-table", event); err != nil {
			slog.Error("failed to publish TierTableEvent", "error", err.Error())
		}
	}(len(tiers))

	return tiers, nil
}

package usecase

import (
	"log/slog"

	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	"github.com/refpilot/affiliate-service/internal/infrastructure/metrics"
)

// IntegrityReport lists data anomalies the engine degrades around at
// read time: recruiter cycles that pre-date the write-time check and
// rows pointing at affiliates that no longer exist.
type IntegrityReport struct {
	CycleAffiliateIDs     []string `json:"cycle_affiliate_ids"`
	DanglingParentIDs     []string `json:"dangling_parent_ids"`
	DanglingConversionIDs []string `json:"dangling_conversion_ids"`
}

func (r *IntegrityReport) Clean() bool {
	return len(r.CycleAffiliateIDs) == 0 &&
		len(r.DanglingParentIDs) == 0 &&
		len(r.DanglingConversionIDs) == 0
}

type IntegrityUsecase interface {
	Sweep() (*IntegrityReport, error)
}

type DefaultIntegrityUsecase struct {
	AffiliateRepo  domain.AffiliateRepository
	ConversionRepo domain.ConversionRepository
	Metrics        *metrics.AffiliateMetrics
}

func NewDefaultIntegrityUsecase(
	affiliateRepo domain.AffiliateRepository,
	conversionRepo domain.ConversionRepository,
	m *metrics.AffiliateMetrics) *DefaultIntegrityUsecase {

	return &DefaultIntegrityUsecase{
		AffiliateRepo:  affiliateRepo,
		ConversionRepo: conversionRepo,
		Metrics:        m,
	}
}

// Sweep walks the whole forest and conversion set looking for anomalies.
// It never mutates anything: the findings are logged, counted and handed
// to the admin screen for manual cleanup.
func (uc *DefaultIntegrityUsecase) Sweep() (*IntegrityReport, error) {
	affiliates, err := uc.AffiliateRepo.GetAffiliates(nil)
	if err != nil {
		return nil, err
	}
	conversions, err := uc.ConversionRepo.GetAllConversions()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(affiliates))
	for _, affiliate := range affiliates {
		known[affiliate.ID] = true
	}

	report := &IntegrityReport{}

	graph := engine.NewGraph(affiliates)
	for _, affiliate := range affiliates {
		if affiliate.ParentID != "" && !known[affiliate.ParentID] {
			report.DanglingParentIDs = append(report.DanglingParentIDs, affiliate.ID)
		}
		graph.AncestorsUpTo(affiliate.ID, engine.MaxOverrideDepth)
	}
	seenCycle := make(map[string]bool)
	for _, id := range graph.Cycles() {
		if !seenCycle[id] {
			seenCycle[id] = true
			report.CycleAffiliateIDs = append(report.CycleAffiliateIDs, id)
		}
	}

	for _, conversion := range conversions {
		if !known[conversion.AffiliateID] {
			report.DanglingConversionIDs = append(report.DanglingConversionIDs, conversion.ID)
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.IntegritySweepsTotal.Inc()
		uc.Metrics.GraphCyclesDetectedTotal.Add(float64(len(report.CycleAffiliateIDs)))
		uc.Metrics.DanglingParentsTotal.Add(float64(len(report.DanglingParentIDs)))
		uc.Metrics.DanglingConversionsTotal.Add(float64(len(report.DanglingConversionIDs)))
	}

	if !report.Clean() {
		slog.Warn("integrity sweep found anomalies",
			"cycles", len(report.CycleAffiliateIDs),
			"dangling_parents", len(report.DanglingParentIDs),
			"dangling_conversions", len(report.DanglingConversionIDs))
	}

	return report, nil
}

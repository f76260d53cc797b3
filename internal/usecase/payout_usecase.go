package usecase

import (
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	publisher "github.com/refpilot/affiliate-service/internal/infrastructure/kafka"
	"github.com/refpilot/affiliate-service/internal/infrastructure/metrics"
	payoutdto "github.com/refpilot/affiliate-service/internal/usecase/dto/payout"
)

type PayoutUsecase interface {
	GetLedger(affiliateID string) (*payoutdto.LedgerOutput, error)
	PayNow(input *payoutdto.PayNowInput) (*domain.Payout, error)
	RecordPayout(input *payoutdto.RecordPayoutInput) (*domain.Payout, error)
	MassPayoutPreview() ([]*payoutdto.MassPayoutRow, error)
	GetPayoutsByAffiliateID(affiliateID string) ([]*domain.Payout, error)
}

type DefaultPayoutUsecase struct {
	AffiliateRepo  domain.AffiliateRepository
	ConversionRepo domain.ConversionRepository
	PayoutRepo     domain.PayoutRepository
	TierUsecase    TierUsecase
	Publisher      domain.PublisherPort
	Metrics        *metrics.AffiliateMetrics
}

func NewDefaultPayoutUsecase(
	affiliateRepo domain.AffiliateRepository,
	conversionRepo domain.ConversionRepository,
	payoutRepo domain.PayoutRepository,
	tierUsecase TierUsecase,
	pub domain.PublisherPort,
	m *metrics.AffiliateMetrics) *DefaultPayoutUsecase {

	return &DefaultPayoutUsecase{
		AffiliateRepo:  affiliateRepo,
		ConversionRepo: conversionRepo,
		PayoutRepo:     payoutRepo,
		TierUsecase:    tierUsecase,
		Publisher:      pub,
		Metrics:        m,
	}
}

// GetLedger recomputes the full owed-vs-paid view from current data.
// No cached commission value is consulted; this is the recompute-on-read
// property the whole engine is built around.
func (uc *DefaultPayoutUsecase) GetLedger(affiliateID string) (*payoutdto.LedgerOutput, error) {
	if _, err := uc.AffiliateRepo.GetAffiliateByID(affiliateID); err != nil {
		return nil, domain.ErrAffiliateNotFound
	}

	started := time.Now()
	ledger, err := uc.computeLedger(affiliateID)
	if err != nil {
		return nil, err
	}
	if uc.Metrics != nil {
		uc.Metrics.LedgerComputeDuration.Observe(time.Since(started).Seconds())
		if n := len(ledger.DanglingConversions); n > 0 {
			uc.Metrics.DanglingConversionsTotal.Add(float64(n))
		}
	}
	if len(ledger.DanglingConversions) > 0 {
		slog.Warn("ledger excluded conversions with unknown owners",
			"affiliate_id", affiliateID,
			"conversion_ids", ledger.DanglingConversions)
	}

	return &payoutdto.LedgerOutput{
		AffiliateID:          ledger.AffiliateID,
		PendingApprovalOwed:  ledger.PendingApprovalOwed,
		ApprovedUnpaidOwed:   ledger.ApprovedUnpaidOwed,
		UnpaidOwed:           ledger.UnpaidOwed,
		PaidToDate:           ledger.PaidToDate,
		PayableConversionIDs: ledger.PayableConversionIDs,
	}, nil
}

// PayNow settles the named approved conversions in one transaction:
// their status flips to paid and the payout row is inserted together, or
// neither happens. A second racer submitting the same ids finds them no
// longer approved and the whole call fails without sending anything.
func (uc *DefaultPayoutUsecase) PayNow(input *payoutdto.PayNowInput) (*domain.Payout, error) {
	if len(input.ConversionIDs) == 0 {
		return nil, domain.ErrNothingToPay
	}
	if _, err := uc.AffiliateRepo.GetAffiliateByID(input.AffiliateID); err != nil {
		return nil, domain.ErrAffiliateNotFound
	}

	amount := input.Amount
	if amount == 0 {
		computed, err := uc.directCommissionFor(input.AffiliateID, input.ConversionIDs)
		if err != nil {
			return nil, err
		}
		amount = computed
	}
	if amount < 0 {
		return nil, domain.ErrNegativeAmount
	}

	payout := &domain.Payout{
		ID:          uuid.New().String(),
		AffiliateID: input.AffiliateID,
		Amount:      amount,
		Method:      input.Method,
		Reference:   input.Reference,
		PaidAt:      time.Now(),
	}

	if err := uc.PayoutRepo.SettleConversions(payout, input.ConversionIDs); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.PayNowConflictsTotal.Inc()
		}
		return nil, err
	}

	uc.recordPayoutMetrics(payout)
	uc.publishPayoutEvent("settled", payout)

	return payout, nil
}

// RecordPayout books a manual payment without settling conversions,
// used for override balances and off-platform transfers.
func (uc *DefaultPayoutUsecase) RecordPayout(input *payoutdto.RecordPayoutInput) (*domain.Payout, error) {
	if input.Amount < 0 {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.AffiliateRepo.GetAffiliateByID(input.AffiliateID); err != nil {
		return nil, domain.ErrAffiliateNotFound
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	payout := &domain.Payout{
		ID:          uuid.New().String(),
		AffiliateID: input.AffiliateID,
		Amount:      input.Amount,
		Method:      input.Method,
		Reference:   input.Reference,
		PaidAt:      paidAt,
	}

	if err := uc.PayoutRepo.CreatePayout(payout); err != nil {
		return nil, err
	}

	uc.recordPayoutMetrics(payout)
	uc.publishPayoutEvent("recorded", payout)

	return payout, nil
}

// MassPayoutPreview computes every active affiliate's approved-unpaid
// balance as the pre-filled payable amount for the mass payout screen.
func (uc *DefaultPayoutUsecase) MassPayoutPreview() ([]*payoutdto.MassPayoutRow, error) {
	affiliates, err := uc.AffiliateRepo.GetAffiliates([]domain.AffiliateStatus{domain.AffiliateStatusActive})
	if err != nil {
		return nil, err
	}

	var rows []*payoutdto.MassPayoutRow
	for _, affiliate := range affiliates {
		ledger, err := uc.computeLedger(affiliate.ID)
		if err != nil {
			return nil, err
		}
		if ledger.ApprovedUnpaidOwed <= 0 {
			continue
		}
		rows = append(rows, &payoutdto.MassPayoutRow{
			AffiliateID:        affiliate.ID,
			Name:               affiliate.Name,
			Email:              affiliate.Email,
			ApprovedUnpaidOwed: ledger.ApprovedUnpaidOwed,
			ConversionIDs:      ledger.PayableConversionIDs,
		})
	}
	return rows, nil
}

func (uc *DefaultPayoutUsecase) GetPayoutsByAffiliateID(affiliateID string) ([]*domain.Payout, error) {
	return uc.PayoutRepo.GetPayoutsByAffiliateID(affiliateID)
}

func (uc *DefaultPayoutUsecase) computeLedger(affiliateID string) (engine.Ledger, error) {
	affiliates, err := uc.AffiliateRepo.GetAffiliates(nil)
	if err != nil {
		return engine.Ledger{}, err
	}
	conversions, err := uc.ConversionRepo.GetAllConversions()
	if err != nil {
		return engine.Ledger{}, err
	}
	payouts, err := uc.PayoutRepo.GetPayoutsByAffiliateID(affiliateID)
	if err != nil {
		return engine.Ledger{}, err
	}
	tiers, err := uc.TierUsecase.GetTierTable()
	if err != nil {
		return engine.Ledger{}, err
	}

	graph := engine.NewGraph(affiliates)
	ledger := engine.LedgerFor(affiliateID, engine.NewConversionIndex(conversions), payouts, graph, tiers)

	if uc.Metrics != nil && len(graph.Cycles()) > 0 {
		uc.Metrics.GraphCyclesDetectedTotal.Add(float64(len(graph.Cycles())))
	}

	return ledger, nil
}

// directCommissionFor recomputes the direct commission owed on the given
// conversions, used as the default pay-now amount when the operator does
// not override it.
func (uc *DefaultPayoutUsecase) directCommissionFor(affiliateID string, conversionIDs []string) (float64, error) {
	affiliates, err := uc.AffiliateRepo.GetAffiliates(nil)
	if err != nil {
		return 0, err
	}
	conversions, err := uc.ConversionRepo.GetAllConversions()
	if err != nil {
		return 0, err
	}
	tiers, err := uc.TierUsecase.GetTierTable()
	if err != nil {
		return 0, err
	}

	wanted := make(map[string]bool, len(conversionIDs))
	for _, id := range conversionIDs {
		wanted[id] = true
	}

	graph := engine.NewGraph(affiliates)
	idx := engine.NewConversionIndex(conversions)

	var total float64
	matched := 0
	for _, conversion := range conversions {
		if !wanted[conversion.ID] {
			continue
		}
		matched++
		if conversion.AffiliateID != affiliateID {
			return 0, domain.ErrConversionNotFound
		}
		if conversion.Status != domain.ConversionStatusApproved {
			return 0, domain.ErrConversionNotApproved
		}
		breakdown, err := engine.CommissionsFor(conversion, graph, idx, tiers)
		if err != nil {
			return 0, err
		}
		total += breakdown.Direct
	}
	if matched != len(conversionIDs) {
		return 0, domain.ErrConversionNotFound
	}

	return math.Round(total*100) / 100, nil
}

func (uc *DefaultPayoutUsecase) recordPayoutMetrics(payout *domain.Payout) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PayoutsTotal.WithLabelValues(payout.Method).Inc()
	uc.Metrics.PayoutsAmountTotal.WithLabelValues(payout.Method).Add(payout.Amount)
}

func (uc *DefaultPayoutUsecase) publishPayoutEvent(event string, payout *domain.Payout) {
	go func(e publisher.PayoutEvent) {
		if err := publishJSON(uc.Publisher, publisher.TopicPayoutEvents, e.AffiliateID, e); err != nil {
			slog.Error("failed to publish PayoutEvent", "event", e.Event, "error", err.Error())
		}
	}(publisher.PayoutEvent{
		Event:       event,
		PayoutID:    payout.ID,
		AffiliateID: payout.AffiliateID,
		Amount:      payout.Amount,
		Method:      payout.Method,
		Reference:   payout.Reference,
	})
}

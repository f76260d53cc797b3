package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	publisher "github.com/refpilot/affiliate-service/internal/infrastructure/kafka"
	"github.com/refpilot/affiliate-service/internal/infrastructure/metrics"
	conversiondto "github.com/refpilot/affiliate-service/internal/usecase/dto/conversion"
)

type ConversionUsecase interface {
	LogSale(input *conversiondto.LogSaleInput, source string) (*domain.Conversion, error)
	ApproveConversion(conversionID string) error
	RefundConversion(conversionID string) error
	GetConversionsByAffiliateID(affiliateID string) ([]*domain.Conversion, error)
	GetMonthlyRevenue(affiliateID string, month engine.YearMonth) (float64, error)
}

type DefaultConversionUsecase struct {
	ConversionRepo domain.ConversionRepository
	AffiliateRepo  domain.AffiliateRepository
	Publisher      domain.PublisherPort
	Metrics        *metrics.AffiliateMetrics
}

func NewDefaultConversionUsecase(
	conversionRepo domain.ConversionRepository,
	affiliateRepo domain.AffiliateRepository,
	pub domain.PublisherPort,
	m *metrics.AffiliateMetrics) *DefaultConversionUsecase {

	return &DefaultConversionUsecase{
		ConversionRepo: conversionRepo,
		AffiliateRepo:  affiliateRepo,
		Publisher:      pub,
		Metrics:        m,
	}
}

// LogSale records one attributed sale. Inserts are independent rows, so
// two simultaneous log-sale calls for the same affiliate cannot lose an
// update. Unknown owners are rejected here at the write boundary; the
// integrity sweep catches rows that went bad later.
func (uc *DefaultConversionUsecase) LogSale(input *conversiondto.LogSaleInput, source string) (*domain.Conversion, error) {
	if input.Amount < 0 {
		return nil, domain.ErrNegativeAmount
	}
	if _, err := uc.AffiliateRepo.GetAffiliateByID(input.AffiliateID); err != nil {
		return nil, domain.ErrAffiliateNotFound
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	conversion := &domain.Conversion{
		ID:          uuid.New().String(),
		AffiliateID: input.AffiliateID,
		Amount:      input.Amount,
		Status:      domain.ConversionStatusPending,
		CreatedAt:   createdAt,
	}

	if err := uc.ConversionRepo.CreateConversion(conversion); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.ConversionsLoggedTotal.WithLabelValues(source).Inc()
		uc.Metrics.ConversionsAmountTotal.WithLabelValues(source).Add(conversion.Amount)
	}
	uc.publishConversionEvent("logged", conversion)

	return conversion, nil
}

// ApproveConversion moves a conversion one way, pending to approved.
// Paid is only ever set by the payout settlement transaction.
func (uc *DefaultConversionUsecase) ApproveConversion(conversionID string) error {
	conversion, err := uc.ConversionRepo.GetConversionByID(conversionID)
	if err != nil {
		return domain.ErrConversionNotFound
	}

	switch conversion.Status {
	case domain.ConversionStatusApproved:
		return nil // already there, keep the operation idempotent
	case domain.ConversionStatusPaid:
		return domain.ErrConversionAlreadyPaid
	}

	if err := uc.ConversionRepo.UpdateConversionStatus(conversionID, domain.ConversionStatusApproved); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.ConversionsApprovedTotal.Inc()
	}
	conversion.Status = domain.ConversionStatusApproved
	uc.publishConversionEvent("approved", conversion)

	return nil
}

// RefundConversion deletes the row. Tier and overrides are derived, so
// nothing needs explicit recomputation; the event lets surrounding
// caches and dashboards invalidate.
func (uc *DefaultConversionUsecase) RefundConversion(conversionID string) error {
	conversion, err := uc.ConversionRepo.GetConversionByID(conversionID)
	if err != nil {
		return domain.ErrConversionNotFound
	}

	if err := uc.ConversionRepo.DeleteConversion(conversionID); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.ConversionsRefundedTotal.Inc()
	}
	uc.publishConversionEvent("refunded", conversion)

	return nil
}

func (uc *DefaultConversionUsecase) GetConversionsByAffiliateID(affiliateID string) ([]*domain.Conversion, error) {
	return uc.ConversionRepo.GetConversionsByAffiliateID(affiliateID)
}

func (uc *DefaultConversionUsecase) GetMonthlyRevenue(affiliateID string, month engine.YearMonth) (float64, error) {
	conversions, err := uc.ConversionRepo.GetConversionsByAffiliateID(affiliateID)
	if err != nil {
		return 0, err
	}
	return engine.MonthlyRevenue(conversions, month), nil
}

func (uc *DefaultConversionUsecase) publishConversionEvent(event string, conversion *domain.Conversion) {
	go func(e publisher.ConversionEvent) {
		if err := publishJSON(uc.Publisher, publisher.TopicConversionEvents, e.AffiliateID, e); err != nil {
			slog.Error("failed to publish ConversionEvent", "event", e.Event, "error", err.Error())
		}
	}(publisher.ConversionEvent{
		Event:        event,
		ConversionID: conversion.ID,
		AffiliateID:  conversion.AffiliateID,
		Amount:       conversion.Amount,
		Status:       string(conversion.Status),
	})
}

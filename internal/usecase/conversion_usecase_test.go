package usecase

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	affiliatedto "github.com/refpilot/affiliate-service/internal/usecase/dto/affiliate"
	conversiondto "github.com/refpilot/affiliate-service/internal/usecase/dto/conversion"
)

func newConversionFixture(t *testing.T) (*DefaultConversionUsecase, *domain.Affiliate) {
	t.Helper()
	affiliateRepo := newFakeAffiliateRepo()
	conversionRepo := &fakeConversionRepo{}
	tierUsecase := NewDefaultTierUsecase(&fakeTierRepo{}, nil, nil)
	affiliateUsecase := NewDefaultAffiliateUsecase(affiliateRepo, conversionRepo, tierUsecase, nil, nil)

	affiliate, err := affiliateUsecase.CreateAffiliate(&affiliatedto.CreateAffiliateInput{
		Name: "A", Email: "a@x.com", Active: true,
	})
	assert.Equal(t, err, nil)

	return NewDefaultConversionUsecase(conversionRepo, affiliateRepo, nil, nil), affiliate
}

func TestLogSaleDefaultsCreatedAtAndStartsPending(t *testing.T) {
	uc, affiliate := newConversionFixture(t)

	conversion, err := uc.LogSale(&conversiondto.LogSaleInput{AffiliateID: affiliate.ID, Amount: 120}, "manual")
	assert.Equal(t, err, nil)
	assert.Equal(t, conversion.Status, domain.ConversionStatusPending)
	if conversion.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to default to now")
	}
}

func TestLogSaleRejectsBadInput(t *testing.T) {
	uc, affiliate := newConversionFixture(t)

	_, err := uc.LogSale(&conversiondto.LogSaleInput{AffiliateID: affiliate.ID, Amount: -5}, "manual")
	assert.Equal(t, err, domain.ErrNegativeAmount)

	_, err = uc.LogSale(&conversiondto.LogSaleInput{AffiliateID: "ghost", Amount: 10}, "manual")
	assert.Equal(t, err, domain.ErrAffiliateNotFound)
}

func TestApproveConversionIsOneWay(t *testing.T) {
	uc, affiliate := newConversionFixture(t)

	conversion, _ := uc.LogSale(&conversiondto.LogSaleInput{AffiliateID: affiliate.ID, Amount: 100}, "manual")

	assert.Equal(t, uc.ApproveConversion(conversion.ID), nil)
	// re-approving is a no-op, not an error
	assert.Equal(t, uc.ApproveConversion(conversion.ID), nil)

	conversion.Status = domain.ConversionStatusPaid
	assert.Equal(t, uc.ApproveConversion(conversion.ID), domain.ErrConversionAlreadyPaid)

	assert.Equal(t, uc.ApproveConversion("missing"), domain.ErrConversionNotFound)
}

func TestRefundConversionRemovesItFromRevenue(t *testing.T) {
	uc, affiliate := newConversionFixture(t)

	createdAt := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)
	conversion, _ := uc.LogSale(&conversiondto.LogSaleInput{
		AffiliateID: affiliate.ID, Amount: 400, CreatedAt: createdAt,
	}, "manual")

	month := engine.MonthOf(createdAt)
	revenue, err := uc.GetMonthlyRevenue(affiliate.ID, month)
	assert.Equal(t, err, nil)
	assert.Equal(t, revenue, float64(400))

	assert.Equal(t, uc.RefundConversion(conversion.ID), nil)

	revenue, err = uc.GetMonthlyRevenue(affiliate.ID, month)
	assert.Equal(t, err, nil)
	assert.Equal(t, revenue, float64(0))

	assert.Equal(t, uc.RefundConversion(conversion.ID), domain.ErrConversionNotFound)
}

package usecase

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	affiliatedto "github.com/refpilot/affiliate-service/internal/usecase/dto/affiliate"
)

func newAffiliateFixture() (*DefaultAffiliateUsecase, *fakeAffiliateRepo, *fakeConversionRepo) {
	affiliateRepo := newFakeAffiliateRepo()
	conversionRepo := &fakeConversionRepo{}
	tierUsecase := NewDefaultTierUsecase(&fakeTierRepo{}, nil, nil)
	uc := NewDefaultAffiliateUsecase(affiliateRepo, conversionRepo, tierUsecase, nil, nil)
	return uc, affiliateRepo, conversionRepo
}

func TestCreateAffiliateGeneratesSlugAndDefaultsToPending(t *testing.T) {
	uc, _, _ := newAffiliateFixture()

	affiliate, err := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{
		Name:  "Dana",
		Email: "Dana@Example.com",
	})
	assert.Equal(t, err, nil)
	assert.Equal(t, affiliate.Status, domain.AffiliateStatusPending)
	assert.Equal(t, affiliate.Email, "dana@example.com")
	assert.Equal(t, len(affiliate.Slug), 10)
}

func TestCreateAffiliateRejectsDuplicateEmailAndSlug(t *testing.T) {
	uc, _, _ := newAffiliateFixture()

	_, err := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "A", Email: "a@x.com", Slug: "a-slug"})
	assert.Equal(t, err, nil)

	_, err = uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "B", Email: "a@x.com", Slug: "b-slug"})
	assert.Equal(t, err, domain.ErrEmailTaken)

	_, err = uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "C", Email: "c@x.com", Slug: "a-slug"})
	assert.Equal(t, err, domain.ErrSlugTaken)
}

func TestApproveAffiliateAttachesReferralParent(t *testing.T) {
	uc, repo, _ := newAffiliateFixture()

	recruiter, err := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{
		Name: "Recruiter", Email: "r@x.com", Slug: "rec", Active: true,
	})
	assert.Equal(t, err, nil)

	recruit, err := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "Recruit", Email: "n@x.com"})
	assert.Equal(t, err, nil)
	assert.Equal(t, recruit.Status, domain.AffiliateStatusPending)

	assert.Equal(t, uc.ApproveAffiliate(recruit.ID, "rec"), nil)

	stored, _ := repo.GetAffiliateByID(recruit.ID)
	assert.Equal(t, stored.Status, domain.AffiliateStatusActive)
	assert.Equal(t, stored.ParentID, recruiter.ID)

	// approving twice is an invalid transition
	assert.Equal(t, uc.ApproveAffiliate(recruit.ID, ""), domain.ErrInvalidStatusChange)
}

func TestSetParentRejectsCycles(t *testing.T) {
	uc, repo, _ := newAffiliateFixture()

	a, _ := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "A", Email: "a@x.com", Active: true})
	b, _ := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "B", Email: "b@x.com", Active: true})
	c, _ := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "C", Email: "c@x.com", Active: true})

	assert.Equal(t, uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: b.ID, ParentID: a.ID}), nil)
	assert.Equal(t, uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: c.ID, ParentID: b.ID}), nil)

	// a <- b <- c: pointing a anywhere into its own subtree must fail
	assert.Equal(t, uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: a.ID, ParentID: c.ID}), domain.ErrCycleDetected)
	assert.Equal(t, uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: a.ID, ParentID: a.ID}), domain.ErrCycleDetected)

	stored, _ := repo.GetAffiliateByID(a.ID)
	assert.Equal(t, stored.ParentID, "")

	// detaching is always allowed
	assert.Equal(t, uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: c.ID, ParentID: ""}), nil)
}

func TestSetParentRejectsUnknownParent(t *testing.T) {
	uc, _, _ := newAffiliateFixture()

	a, _ := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "A", Email: "a@x.com", Active: true})

	err := uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: a.ID, ParentID: "missing"})
	assert.Equal(t, err, domain.ErrParentNotFound)
}

func TestGetAffiliateSummaryDerivesTierFromMonthlyRevenue(t *testing.T) {
	uc, _, conversionRepo := newAffiliateFixture()

	affiliate, _ := uc.CreateAffiliate(&affiliatedto.CreateAffiliateInput{Name: "A", Email: "a@x.com", Active: true})

	month := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	conversionRepo.conversions = []*domain.Conversion{
		{ID: "c1", AffiliateID: affiliate.ID, Amount: 3000, Status: domain.ConversionStatusApproved, CreatedAt: month},
		{ID: "c2", AffiliateID: affiliate.ID, Amount: 100, Status: domain.ConversionStatusPaid, CreatedAt: month.AddDate(0, -1, 0)},
	}

	// default table: Silver at 2500 with 15% direct
	summary, err := uc.GetAffiliateSummary(affiliate.ID, engine.MonthOf(month))
	assert.Equal(t, err, nil)
	assert.Equal(t, summary.TierName, "Silver")
	assert.Equal(t, summary.CommissionRate, float64(15))
	assert.Equal(t, summary.MonthlyRevenue, float64(3000))
	assert.Equal(t, summary.TotalRevenue, float64(3100))
	assert.Equal(t, *summary.NextThreshold, float64(10000))
	assert.Equal(t, summary.RemainingGap, float64(7000))
}

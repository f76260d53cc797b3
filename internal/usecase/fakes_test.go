package usecase

import (
	"errors"
	"sort"
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

var errNotFound = errors.New("record not found")

type fakeAffiliateRepo struct {
	affiliates map[string]*domain.Affiliate
}

func newFakeAffiliateRepo() *fakeAffiliateRepo {
	return &fakeAffiliateRepo{affiliates: make(map[string]*domain.Affiliate)}
}

func (r *fakeAffiliateRepo) CreateAffiliate(affiliate *domain.Affiliate) error {
	r.affiliates[affiliate.ID] = affiliate
	return nil
}

func (r *fakeAffiliateRepo) GetAffiliateByID(affiliateID string) (*domain.Affiliate, error) {
	affiliate, ok := r.affiliates[affiliateID]
	if !ok {
		return nil, errNotFound
	}
	return affiliate, nil
}

func (r *fakeAffiliateRepo) GetAffiliateByEmail(email string) (*domain.Affiliate, error) {
	for _, affiliate := range r.affiliates {
		if affiliate.Email == email {
			return affiliate, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeAffiliateRepo) GetAffiliateBySlug(slug string) (*domain.Affiliate, error) {
	for _, affiliate := range r.affiliates {
		if affiliate.Slug == slug {
			return affiliate, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeAffiliateRepo) GetAffiliates(statuses []domain.AffiliateStatus) ([]*domain.Affiliate, error) {
	var out []*domain.Affiliate
	for _, affiliate := range r.affiliates {
		if len(statuses) == 0 {
			out = append(out, affiliate)
			continue
		}
		for _, status := range statuses {
			if affiliate.Status == status {
				out = append(out, affiliate)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAffiliateRepo) UpdateAffiliateStatus(affiliateID string, newStatus domain.AffiliateStatus) error {
	affiliate, ok := r.affiliates[affiliateID]
	if !ok {
		return errNotFound
	}
	affiliate.Status = newStatus
	return nil
}

func (r *fakeAffiliateRepo) UpdateAffiliateParent(affiliateID, parentID string) error {
	affiliate, ok := r.affiliates[affiliateID]
	if !ok {
		return errNotFound
	}
	affiliate.ParentID = parentID
	return nil
}

func (r *fakeAffiliateRepo) DeleteAffiliate(affiliateID string) error {
	delete(r.affiliates, affiliateID)
	return nil
}

type fakeConversionRepo struct {
	conversions []*domain.Conversion
}

func (r *fakeConversionRepo) CreateConversion(conversion *domain.Conversion) error {
	r.conversions = append(r.conversions, conversion)
	return nil
}

func (r *fakeConversionRepo) GetConversionByID(conversionID string) (*domain.Conversion, error) {
	for _, conversion := range r.conversions {
		if conversion.ID == conversionID {
			return conversion, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeConversionRepo) GetConversionsByAffiliateID(affiliateID string) ([]*domain.Conversion, error) {
	var out []*domain.Conversion
	for _, conversion := range r.conversions {
		if conversion.AffiliateID == affiliateID {
			out = append(out, conversion)
		}
	}
	return out, nil
}

func (r *fakeConversionRepo) GetAllConversions() ([]*domain.Conversion, error) {
	return r.conversions, nil
}

func (r *fakeConversionRepo) UpdateConversionStatus(conversionID string, newStatus domain.ConversionStatus) error {
	conversion, err := r.GetConversionByID(conversionID)
	if err != nil {
		return err
	}
	conversion.Status = newStatus
	return nil
}

func (r *fakeConversionRepo) DeleteConversion(conversionID string) error {
	for i, conversion := range r.conversions {
		if conversion.ID == conversionID {
			r.conversions = append(r.conversions[:i], r.conversions[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

// fakePayoutRepo shares the conversion slice so SettleConversions can
// mimic the real single-transaction semantics: all-approved or nothing.
type fakePayoutRepo struct {
	payouts     []*domain.Payout
	conversions *fakeConversionRepo
}

func (r *fakePayoutRepo) CreatePayout(payout *domain.Payout) error {
	r.payouts = append(r.payouts, payout)
	return nil
}

func (r *fakePayoutRepo) GetPayoutsByAffiliateID(affiliateID string) ([]*domain.Payout, error) {
	var out []*domain.Payout
	for _, payout := range r.payouts {
		if payout.AffiliateID == affiliateID {
			out = append(out, payout)
		}
	}
	return out, nil
}

func (r *fakePayoutRepo) GetAllPayouts() ([]*domain.Payout, error) {
	return r.payouts, nil
}

func (r *fakePayoutRepo) SettleConversions(payout *domain.Payout, conversionIDs []string) error {
	var targets []*domain.Conversion
	for _, id := range conversionIDs {
		conversion, err := r.conversions.GetConversionByID(id)
		if err != nil {
			return domain.ErrConversionNotFound
		}
		if conversion.Status == domain.ConversionStatusPaid {
			return domain.ErrConversionAlreadyPaid
		}
		if conversion.Status != domain.ConversionStatusApproved {
			return domain.ErrConversionNotApproved
		}
		targets = append(targets, conversion)
	}
	now := time.Now()
	for _, conversion := range targets {
		conversion.Status = domain.ConversionStatusPaid
		conversion.PaidAt = &now
	}
	r.payouts = append(r.payouts, payout)
	return nil
}

type fakeTierRepo struct {
	tiers domain.TierTable
}

func (r *fakeTierRepo) GetTierTable() (domain.TierTable, error) {
	return r.tiers, nil
}

func (r *fakeTierRepo) ReplaceTierTable(tiers domain.TierTable) error {
	r.tiers = tiers
	return nil
}
